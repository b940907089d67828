package connections

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrConnectionNotFound = errors.New("connection not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// stores or refreshes the connection for a user and platform after an
// OAuth callback
func (r *Repository) Upsert(
	ctx context.Context,
	userID string,
	req UpsertConnectionRequest,
) (*Connection, error) {
	settings := req.Settings

	if settings == nil {
		settings = map[string]any{}
	}

	var conn Connection

	err := r.db.QueryRow(
		ctx,
		queryUpsert,
		userID,
		req.Platform,
		req.AccessToken,
		req.RefreshToken,
		req.TokenExpiresAt,
		req.PlatformUserID,
		req.PlatformUsername,
		settings,
	).Scan(
		&conn.ID,
		&conn.UserID,
		&conn.Platform,
		&conn.AccessToken,
		&conn.RefreshToken,
		&conn.TokenExpiresAt,
		&conn.Active,
		&conn.PlatformUserID,
		&conn.PlatformUsername,
		&conn.Settings,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &conn, nil
}

func (r *Repository) ListForUser(ctx context.Context, userID string) ([]Connection, error) {
	rows, err := r.db.Query(ctx, queryListForUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Connection

	for rows.Next() {
		var c Connection
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Platform,
			&c.AccessToken,
			&c.RefreshToken,
			&c.TokenExpiresAt,
			&c.Active,
			&c.PlatformUserID,
			&c.PlatformUsername,
			&c.Settings,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// returns the connection for a platform, or ErrConnectionNotFound
func (r *Repository) FindForPlatform(ctx context.Context, userID, platform string) (*Connection, error) {
	var conn Connection

	err := r.db.QueryRow(ctx, queryFindForPlatform, userID, platform).Scan(
		&conn.ID,
		&conn.UserID,
		&conn.Platform,
		&conn.AccessToken,
		&conn.RefreshToken,
		&conn.TokenExpiresAt,
		&conn.Active,
		&conn.PlatformUserID,
		&conn.PlatformUsername,
		&conn.Settings,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrConnectionNotFound
	}

	if err != nil {
		return nil, err
	}

	return &conn, nil
}

// marks a connection inactive without discarding it
func (r *Repository) Deactivate(ctx context.Context, userID, platform string) error {
	result, err := r.db.Exec(ctx, queryDeactivate, userID, platform)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrConnectionNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, userID, platform string) error {
	result, err := r.db.Exec(ctx, queryDelete, userID, platform)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrConnectionNotFound
	}

	return nil
}
