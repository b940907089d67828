package templates

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles prompt template database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a user-authored customization appended to the system prompt
// for one content mode. At most one template per (user, mode) is active.
type Template struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	ContentMode string    `json:"content_mode"`
	PromptText  string    `json:"prompt_text"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// contains data for creating a template
type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required"`
	ContentMode string `json:"content_mode" binding:"required"`
	PromptText  string `json:"prompt_text" binding:"required"`
	Active      bool   `json:"active"`
}

// contains data for updating a template
type UpdateTemplateRequest struct {
	Name       string `json:"name"`
	PromptText string `json:"prompt_text"`
	Active     *bool  `json:"active"`
}
