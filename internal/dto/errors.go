package dto

// ErrorResponse documents the error envelope for swagger
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
