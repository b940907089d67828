package templates

import "github.com/postforge/server/postforge/templates"

// ListResponse wraps the user's templates
type ListResponse struct {
	Templates []templates.Template `json:"templates"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
