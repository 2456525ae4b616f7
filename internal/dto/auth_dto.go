package dto

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries no token: the client keeps its own logged-in flag.
type LoginResponse struct {
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje"`
}
