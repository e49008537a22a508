package dto

// LoginRequest is the admin login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token and the account role.
// The client persists both; role gates admin-only UI.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	Role        string `json:"role" example:"admin"`
}
