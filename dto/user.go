package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the wire shape of a user; the hash never leaves the
// server.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
