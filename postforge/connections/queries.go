package connections

const (
	queryUpsert = `
		INSERT INTO platform_connections (user_id, platform, access_token, refresh_token, token_expires_at, active, platform_user_id, platform_username, settings)
		VALUES ($1, $2, $3, $4, $5, true, $6, $7, $8)
		ON CONFLICT (user_id, platform)
		DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			active = true,
			platform_user_id = EXCLUDED.platform_user_id,
			platform_username = EXCLUDED.platform_username,
			settings = EXCLUDED.settings,
			updated_at = NOW()
		RETURNING id, user_id, platform, access_token, refresh_token, token_expires_at, active, platform_user_id, platform_username, settings, created_at, updated_at
	`

	queryListForUser = `
		SELECT id, user_id, platform, access_token, refresh_token, token_expires_at, active, platform_user_id, platform_username, settings, created_at, updated_at
		FROM platform_connections
		WHERE user_id = $1
		ORDER BY platform
	`

	queryFindForPlatform = `
		SELECT id, user_id, platform, access_token, refresh_token, token_expires_at, active, platform_user_id, platform_username, settings, created_at, updated_at
		FROM platform_connections
		WHERE user_id = $1 AND platform = $2
	`

	queryDeactivate = `
		UPDATE platform_connections
		SET active = false, updated_at = NOW()
		WHERE user_id = $1 AND platform = $2
	`

	queryDelete = `
		DELETE FROM platform_connections
		WHERE user_id = $1 AND platform = $2
	`
)
