package users

const (
	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, name, avatar_url, bio, mission_statement, skills, content_mode, tier, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, email, provider, provider_id, name, avatar_url, bio, mission_statement, skills, content_mode, tier, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE users
		SET name = $1, bio = $2, mission_statement = $3, skills = $4, content_mode = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id, email, provider, provider_id, name, avatar_url, bio, mission_statement, skills, content_mode, tier, created_at, updated_at
	`

	queryUpdateTier = `
		UPDATE users
		SET tier = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, provider, provider_id, name, avatar_url, bio, mission_statement, skills, content_mode, tier, created_at, updated_at
	`
)
