package connections

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles platform connection database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an OAuth link between a user and a publishing platform.
// Tokens never leave the server in API responses.
type Connection struct {
	ID               string         `json:"id"`
	UserID           string         `json:"-"`
	Platform         string         `json:"platform"`
	AccessToken      string         `json:"-"`
	RefreshToken     string         `json:"-"`
	TokenExpiresAt   *time.Time     `json:"token_expires_at,omitempty"`
	Active           bool           `json:"active"`
	PlatformUserID   string         `json:"platform_user_id"`
	PlatformUsername string         `json:"platform_username"`
	Settings         map[string]any `json:"settings,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// reports whether this connection can be used for posting right now:
// it must be active, hold an access token, and that token must not
// have expired
func (c *Connection) Valid() bool {
	if !c.Active || c.AccessToken == "" {
		return false
	}

	if c.TokenExpiresAt != nil && !c.TokenExpiresAt.After(time.Now()) {
		return false
	}

	return true
}

// contains the OAuth result stored when a platform is connected
type UpsertConnectionRequest struct {
	Platform         string
	AccessToken      string
	RefreshToken     string
	TokenExpiresAt   *time.Time
	PlatformUserID   string
	PlatformUsername string
	Settings         map[string]any
}
