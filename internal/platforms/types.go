package platforms

// character count guidance for a platform
type CharLimits struct {
	Min     int
	Max     int
	Optimal int
}

// hashtag count guidance for a platform
type HashtagLimits struct {
	Min int
	Max int
}

// image constraints enforced at upload time
type ImageSpecs struct {
	MaxSizeMB int
	MaxCount  int
	Formats   []string
}

// style hints fed verbatim into the AI prompt
type ContentStyle struct {
	Tone         string
	Focus        string
	Engagement   string
	HashtagStyle string
}

// Definition is an immutable platform registry entry. Entries are built
// once at init and never mutated.
type Definition struct {
	Key                string
	Name               string
	Enabled            bool
	OAuthImplemented   bool
	PostingImplemented bool
	CharLimits         CharLimits
	HashtagLimits      HashtagLimits
	ImageSpecs         ImageSpecs
	Style              ContentStyle
}
