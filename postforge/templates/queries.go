package templates

const (
	queryCreate = `
		INSERT INTO prompt_templates (user_id, name, content_mode, prompt_text, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, content_mode, prompt_text, active, created_at, updated_at
	`

	queryList = `
		SELECT id, user_id, name, content_mode, prompt_text, active, created_at, updated_at
		FROM prompt_templates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT id, user_id, name, content_mode, prompt_text, active, created_at, updated_at
		FROM prompt_templates
		WHERE id = $1 AND user_id = $2
	`

	queryUpdate = `
		UPDATE prompt_templates
		SET name = $1, prompt_text = $2, active = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, content_mode, prompt_text, active, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM prompt_templates
		WHERE id = $1 AND user_id = $2
	`

	queryActiveForMode = `
		SELECT id, user_id, name, content_mode, prompt_text, active, created_at, updated_at
		FROM prompt_templates
		WHERE user_id = $1 AND content_mode = $2 AND active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`

	queryDeactivateOthers = `
		UPDATE prompt_templates
		SET active = false, updated_at = NOW()
		WHERE user_id = $1 AND content_mode = $2 AND id != $3 AND active = true
	`
)
