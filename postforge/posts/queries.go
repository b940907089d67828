package posts

const (
	queryCreate = `
		INSERT INTO posts (id, user_id, content_length, content_hash, status, content_mode, ai_generated, platforms, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, content_length, content_hash, status, content_mode, ai_generated, platforms, platform_post_ids, scheduled_for, published_at, error_message, created_at, updated_at
	`

	queryCountByUser = `
		SELECT COUNT(*) FROM posts WHERE user_id = $1
	`

	queryList = `
		SELECT id, user_id, content_length, content_hash, status, content_mode, ai_generated, platforms, platform_post_ids, scheduled_for, published_at, error_message, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryGet = `
		SELECT id, user_id, content_length, content_hash, status, content_mode, ai_generated, platforms, platform_post_ids, scheduled_for, published_at, error_message, created_at, updated_at
		FROM posts
		WHERE id = $1 AND user_id = $2
	`

	queryListDue = `
		SELECT id, user_id, content_length, content_hash, status, content_mode, ai_generated, platforms, platform_post_ids, scheduled_for, published_at, error_message, created_at, updated_at
		FROM posts
		WHERE status = 'scheduled' AND scheduled_for <= $1
		ORDER BY scheduled_for ASC
		LIMIT $2
	`

	queryMarkPublished = `
		UPDATE posts
		SET status = 'published',
			platform_post_ids = COALESCE(platform_post_ids, '{}'::jsonb) || $1,
			published_at = NOW(),
			error_message = '',
			updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, content_length, content_hash, status, content_mode, ai_generated, platforms, platform_post_ids, scheduled_for, published_at, error_message, created_at, updated_at
	`

	queryMarkFailed = `
		UPDATE posts
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, content_length, content_hash, status, content_mode, ai_generated, platforms, platform_post_ids, scheduled_for, published_at, error_message, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM posts
		WHERE id = $1 AND user_id = $2
	`
)
