package models

import "time"

// Comment is a reply attached to an existing post. Like a post it is owned by
// exactly one user, and only the owner may delete it.
type Comment struct {
	// CommentID is the internal unique identifier of the comment.
	CommentID int64 `json:"id"`

	// PostID references the parent post. The database enforces the
	// reference with a foreign key; deleting the post removes its comments.
	PostID int64 `json:"post_id"`

	// UserID references the owning user. Immutable after creation.
	UserID int64 `json:"user_id"`

	// Content is the comment body.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the comment was created.
	CreatedAt time.Time `json:"created_at"`

	// User is the eager-loaded author summary, when requested.
	User *UserSummary `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
