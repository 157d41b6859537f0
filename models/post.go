package models

import "time"

// Post is a blog entry owned by exactly one user. Ownership is assigned at
// creation time and never changes; only the owner may delete the post.
type Post struct {
	// PostID is the internal unique identifier of the post.
	PostID int64 `json:"id"`

	// UserID references the owning user. Immutable after creation.
	UserID int64 `json:"user_id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Content is the post body.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at"`

	// User is the eager-loaded author summary. Populated only by reads that
	// request related entities; nil otherwise.
	User *UserSummary `json:"user,omitempty"`

	// Comments holds the eager-loaded comments of the post. Populated only
	// by reads that request related entities; nil otherwise.
	Comments []Comment `json:"comments,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
