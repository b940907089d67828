package tiers

// feature values mirror the tier table semantics: a feature is granted when
// its value is literally true, "unlimited", or "all". Any other value
// (false, nil, a number, an explicit list) does not grant the feature.
const (
	ValueUnlimited = "unlimited"
	ValueAll       = "all"
)

// well-known feature keys
const (
	FeatureUseAI            = "can_use_ai"
	FeatureEditPrompts      = "can_edit_prompts"
	FeatureAddContentModes  = "can_add_content_modes"
	FeatureSchedulePosts    = "can_schedule_posts"
	FeatureAnalytics        = "can_use_analytics"
	FeaturePlatformVariants = "can_generate_platform_variants"
	FeatureAutopilot        = "can_use_ai_autopilot"
	FeatureInteractiveChat  = "can_use_interactive_ai_chat"
	FeatureOwnAPIKeys       = "can_use_own_api_keys"
	FeatureUploadImages     = "can_upload_images"
)

// describes which content modes or platforms a tier may use:
// either everything, or an explicit key set
type Availability struct {
	All  bool
	Keys []string
}

// monthly generation budget; Unlimited wins over Count
type Quota struct {
	Count     int
	Unlimited bool
}

// per-tier image upload constraints
type ImageLimits struct {
	MaxSizeMB      int
	MaxPerPost     int
	AllowedFormats []string
	CanUpload      bool
}

// rate limits for the AI autopilot (ultimate tier only)
type AutopilotLimits struct {
	PostsPerDay      int
	MinIntervalHours int
	MaxTokensPerDay  int
}

// Definition is an immutable subscription tier record. Definitions are
// constructed once at init and never mutated, so they are safe for
// unsynchronized concurrent reads.
type Definition struct {
	Key         string
	Name        string
	Generations Quota

	// feature flags checked via HasFeature; values are true, false,
	// ValueUnlimited, or ValueAll
	Features map[string]any

	// usage-based limits (the real restrictions on lower tiers)
	PostsPerHour         int
	ScheduledPostsPerDay int
	ConcurrentCampaigns  int

	Images    ImageLimits
	Autopilot AutopilotLimits

	ContentModes Availability
	Platforms    Availability
}

// reports whether the availability set includes the given key
func (a Availability) Allows(key string) bool {
	if a.All {
		return true
	}

	for _, k := range a.Keys {
		if k == key {
			return true
		}
	}

	return false
}
