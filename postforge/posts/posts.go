package posts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPostNotFound = errors.New("post not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// records a new post. The raw content is reduced to length-and-hash
// metadata before anything touches the database.
func (r *Repository) Create(
	ctx context.Context,
	userID string,
	req CreatePostRequest,
) (*Post, error) {
	platforms := req.Platforms

	if platforms == nil {
		platforms = []string{}
	}

	status := StatusDraft
	if req.ScheduledFor != nil {
		status = StatusScheduled
	}

	length, hash := ContentMetadata(req.Content)

	var post Post

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		uuid.NewString(),
		userID,
		length,
		hash,
		status,
		req.ContentMode,
		req.AIGenerated,
		platforms,
		req.ScheduledFor,
	).Scan(
		&post.ID,
		&post.UserID,
		&post.ContentLength,
		&post.ContentHash,
		&post.Status,
		&post.ContentMode,
		&post.AIGenerated,
		&post.Platforms,
		&post.PlatformPostIDs,
		&post.ScheduledFor,
		&post.PublishedAt,
		&post.ErrorMessage,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *Repository) List(ctx context.Context, userID string, limit, offset int) ([]Post, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountByUser, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var results []Post

	for rows.Next() {
		var p Post
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.ContentLength,
			&p.ContentHash,
			&p.Status,
			&p.ContentMode,
			&p.AIGenerated,
			&p.Platforms,
			&p.PlatformPostIDs,
			&p.ScheduledFor,
			&p.PublishedAt,
			&p.ErrorMessage,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (r *Repository) Get(ctx context.Context, postID, userID string) (*Post, error) {
	var post Post

	err := r.db.QueryRow(ctx, queryGet, postID, userID).Scan(
		&post.ID,
		&post.UserID,
		&post.ContentLength,
		&post.ContentHash,
		&post.Status,
		&post.ContentMode,
		&post.AIGenerated,
		&post.Platforms,
		&post.PlatformPostIDs,
		&post.ScheduledFor,
		&post.PublishedAt,
		&post.ErrorMessage,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// returns scheduled posts whose publish time has passed
func (r *Repository) ListDue(ctx context.Context, now time.Time, limit int) ([]Post, error) {
	rows, err := r.db.Query(ctx, queryListDue, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Post

	for rows.Next() {
		var p Post
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.ContentLength,
			&p.ContentHash,
			&p.Status,
			&p.ContentMode,
			&p.AIGenerated,
			&p.Platforms,
			&p.PlatformPostIDs,
			&p.ScheduledFor,
			&p.PublishedAt,
			&p.ErrorMessage,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// records successful publication, merging the per-platform post IDs
func (r *Repository) MarkPublished(
	ctx context.Context,
	postID string,
	platformPostIDs map[string]string,
) (*Post, error) {
	var post Post

	err := r.db.QueryRow(ctx, queryMarkPublished, platformPostIDs, postID).Scan(
		&post.ID,
		&post.UserID,
		&post.ContentLength,
		&post.ContentHash,
		&post.Status,
		&post.ContentMode,
		&post.AIGenerated,
		&post.Platforms,
		&post.PlatformPostIDs,
		&post.ScheduledFor,
		&post.PublishedAt,
		&post.ErrorMessage,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *Repository) MarkFailed(ctx context.Context, postID, errorMessage string) (*Post, error) {
	var post Post

	err := r.db.QueryRow(ctx, queryMarkFailed, errorMessage, postID).Scan(
		&post.ID,
		&post.UserID,
		&post.ContentLength,
		&post.ContentHash,
		&post.Status,
		&post.ContentMode,
		&post.AIGenerated,
		&post.Platforms,
		&post.PlatformPostIDs,
		&post.ScheduledFor,
		&post.PublishedAt,
		&post.ErrorMessage,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *Repository) Delete(ctx context.Context, postID, userID string) error {
	result, err := r.db.Exec(ctx, queryDelete, postID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}
