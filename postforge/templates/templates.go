package templates

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postforge/server/internal/logger"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
)

// creates a new template repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a template; activating it deactivates any other active template
// for the same content mode
func (r *Repository) Create(
	ctx context.Context,
	userID string,
	req CreateTemplateRequest,
) (*Template, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	var template Template

	err = tx.QueryRow(
		ctx,
		queryCreate,
		userID,
		req.Name,
		req.ContentMode,
		req.PromptText,
		req.Active,
	).Scan(
		&template.ID,
		&template.UserID,
		&template.Name,
		&template.ContentMode,
		&template.PromptText,
		&template.Active,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	if template.Active {
		if _, err := tx.Exec(ctx, queryDeactivateOthers, userID, template.ContentMode, template.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &template, nil
}

// lists all templates belonging to a user
func (r *Repository) List(ctx context.Context, userID string) ([]Template, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Template

	for rows.Next() {
		var t Template
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Name,
			&t.ContentMode,
			&t.PromptText,
			&t.Active,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Repository) Get(ctx context.Context, templateID, userID string) (*Template, error) {
	var template Template

	err := r.db.QueryRow(ctx, queryGet, templateID, userID).Scan(
		&template.ID,
		&template.UserID,
		&template.Name,
		&template.ContentMode,
		&template.PromptText,
		&template.Active,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &template, nil
}

// updates a template; passing Active=true deactivates any other active
// template for the same content mode
func (r *Repository) Update(
	ctx context.Context,
	templateID, userID string,
	req UpdateTemplateRequest,
) (*Template, error) {
	existing, err := r.Get(ctx, templateID, userID)
	if err != nil {
		return nil, err
	}

	name := existing.Name
	if req.Name != "" {
		name = req.Name
	}

	promptText := existing.PromptText
	if req.PromptText != "" {
		promptText = req.PromptText
	}

	active := existing.Active
	if req.Active != nil {
		active = *req.Active
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	var template Template

	err = tx.QueryRow(
		ctx,
		queryUpdate,
		name,
		promptText,
		active,
		templateID,
		userID,
	).Scan(
		&template.ID,
		&template.UserID,
		&template.Name,
		&template.ContentMode,
		&template.PromptText,
		&template.Active,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	if template.Active {
		if _, err := tx.Exec(ctx, queryDeactivateOthers, userID, template.ContentMode, template.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &template, nil
}

func (r *Repository) Delete(ctx context.Context, templateID, userID string) error {
	result, err := r.db.Exec(ctx, queryDelete, templateID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// returns the active template for a content mode, or nil when the user
// has none
func (r *Repository) ActiveForMode(ctx context.Context, userID, contentMode string) (*Template, error) {
	var template Template

	err := r.db.QueryRow(ctx, queryActiveForMode, userID, contentMode).Scan(
		&template.ID,
		&template.UserID,
		&template.Name,
		&template.ContentMode,
		&template.PromptText,
		&template.Active,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &template, nil
}
