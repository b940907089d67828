package composer

// Task names the operation a prompt is being composed for. Unrecognized
// tasks map to a generic framing, never an error.
type Task string

const (
	TaskGeneration   Task = "content_generation"
	TaskSuggestions  Task = "suggestions"
	TaskOptimization Task = "optimization"
)

// Prompt is the composed pair sent verbatim to the AI provider. It is
// built fresh per request and never cached or stored.
type Prompt struct {
	System string
	User   string
}

// CustomTemplate is a user-authored prompt enhancement bound to one
// content mode. Template text may contain {user_name}, {user_bio},
// {user_mission}, {user_skills}, {platform_name}, and {platform_style}
// placeholders.
type CustomTemplate struct {
	ContentMode string
	Text        string
	Active      bool
}

// Profile is a read-only snapshot of the user fields the composer
// consumes. Callers map their stored user onto this; the composer never
// touches storage.
type Profile struct {
	Name        string
	Bio         string
	Mission     string
	Skills      []string
	ContentMode string
	Tier        string
	Templates   []CustomTemplate
}

// returns the first active custom template bound to the given content
// mode, or nil. At most one active template per mode is consulted.
func (p Profile) activeTemplateFor(mode string) *CustomTemplate {
	for i := range p.Templates {
		t := &p.Templates[i]
		if t.Active && t.ContentMode == mode {
			return t
		}
	}

	return nil
}
