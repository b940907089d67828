package errors

// ErrorResponse is the JSON error body every handler returns
type ErrorResponse struct {
	Error   string `json:"error"`             // stable error code (e.g. "unauthorized", "not_found")
	Message string `json:"message"`           // user-facing message
	Details string `json:"details,omitempty"` // optional detail, sanitized in production
}

// classification of an underlying error, used to pick codes and safe text
type ErrorInfo struct {
	category  string
	sanitized string
}
