package dto

// ErrorResponse is the body of every non-2xx response. Clients surface
// Detail verbatim, so the message must be user-presentable.
type ErrorResponse struct {
	Detail string `json:"detail" example:"course not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(detail string) *ErrorResponse {
	return &ErrorResponse{Detail: detail}
}
