package models

// RegisterRequest is the payload of POST /register.
// VerifiedPassword must repeat Password exactly; mismatches are rejected
// before any hashing or persistence happens.
type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	VerifiedPassword string `json:"verifiedPassword"`

	// Username is optional; when empty the email is used as the display
	// name.
	Username string `json:"username,omitempty"`
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePostRequest is the payload of POST /post. The owning user comes from
// the authenticated session, never from the body.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateCommentRequest is the payload of POST /comment. The owning user comes
// from the authenticated session, never from the body.
type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  int64  `json:"postId"`
}
