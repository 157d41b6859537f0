package models

// MessageResponse is the generic success body returned by operations that
// have no entity payload (login, logout, deletes).
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned by POST /register on success.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// ErrorResponse is the uniform error body. Message is always a client-safe,
// human-readable string; internal error detail never travels in it.
type ErrorResponse struct {
	Error string `json:"error"`
}
