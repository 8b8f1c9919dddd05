package models

// MessageResponse is the generic success envelope returned by endpoints
// that have no richer payload (signup, delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the signin success payload carrying the issued bearer
// token in its compact serialized form.
type TokenResponse struct {
	// AccessToken is the compact JWS string to be presented in the
	// Authorization header of subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// ErrorResponse is the error envelope returned on every failed request.
// Error carries a short machine-stable reason string; internal details
// (driver errors, stack traces) never leak into it.
type ErrorResponse struct {
	Error string `json:"error"`
}
