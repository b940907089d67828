package tiers

// DefaultTier is used whenever a user's tier key is missing or unrecognized.
const DefaultTier = "free"

// tier keys
const (
	TierFree     = "free"
	TierPro      = "pro"
	TierUltimate = "ultimate"
)

// registry is the process-wide tier table. Built once, read-only afterwards.
var registry = map[string]*Definition{
	TierFree: {
		Key:         TierFree,
		Name:        "Free",
		Generations: Quota{Count: 10},
		Features: map[string]any{
			FeatureUseAI:           true,
			FeatureEditPrompts:     false, // can't customize prompts
			FeatureAddContentModes: false,
			FeatureSchedulePosts:   true,
			FeatureAnalytics:       false,
			FeatureUploadImages:    true,
		},
		PostsPerHour:         1,
		ScheduledPostsPerDay: 1,
		ConcurrentCampaigns:  1,
		Images: ImageLimits{
			MaxSizeMB:      8,
			MaxPerPost:     1,
			AllowedFormats: []string{"jpg", "jpeg", "png"},
			CanUpload:      true,
		},
		ContentModes: Availability{Keys: []string{"business", "influencer", "personal"}},
		Platforms:    Availability{All: true},
	},
	TierPro: {
		Key:         TierPro,
		Name:        "Pro",
		Generations: Quota{Count: 100},
		Features: map[string]any{
			FeatureUseAI:            true,
			FeatureEditPrompts:      true,
			FeatureAddContentModes:  false,
			FeatureSchedulePosts:    true,
			FeatureAnalytics:        true,
			FeaturePlatformVariants: true,
			FeatureUploadImages:     true,
		},
		PostsPerHour:         5,
		ScheduledPostsPerDay: 10,
		ConcurrentCampaigns:  3,
		Images: ImageLimits{
			MaxSizeMB:      15,
			MaxPerPost:     4,
			AllowedFormats: []string{"jpg", "jpeg", "png", "gif", "webp"},
			CanUpload:      true,
		},
		ContentModes: Availability{All: true},
		Platforms:    Availability{All: true},
	},
	TierUltimate: {
		Key:         TierUltimate,
		Name:        "Ultimate",
		Generations: Quota{Unlimited: true},
		Features: map[string]any{
			FeatureUseAI:            true,
			FeatureEditPrompts:      true,
			FeatureAddContentModes:  true,
			FeatureSchedulePosts:    true,
			FeatureAnalytics:        true,
			FeaturePlatformVariants: true,
			FeatureAutopilot:        true,
			FeatureInteractiveChat:  true,
			FeatureOwnAPIKeys:       true,
			FeatureUploadImages:     true,
		},
		PostsPerHour:         20,
		ScheduledPostsPerDay: 50,
		ConcurrentCampaigns:  10,
		Images: ImageLimits{
			MaxSizeMB:      50,
			MaxPerPost:     20,
			AllowedFormats: []string{"jpg", "jpeg", "png", "gif", "webp", "svg", "bmp", "tiff"},
			CanUpload:      true,
		},
		Autopilot: AutopilotLimits{
			PostsPerDay:      6,
			MinIntervalHours: 2,
			MaxTokensPerDay:  5000,
		},
		ContentModes: Availability{All: true},
		Platforms:    Availability{All: true},
	},
}

// returns the definition for a tier key, falling back to the free tier
// for unknown or empty keys. Never returns nil.
func DefinitionFor(key string) *Definition {
	if def, ok := registry[key]; ok {
		return def
	}

	return registry[DefaultTier]
}

// reports whether the tier grants a feature. Only a literal true,
// "unlimited", or "all" value grants access; anything else, including an
// absent key, does not.
func HasFeature(tierKey, feature string) bool {
	def := DefinitionFor(tierKey)

	switch v := def.Features[feature].(type) {
	case bool:
		return v
	case string:
		return v == ValueUnlimited || v == ValueAll
	default:
		return false
	}
}

// returns all tier definitions, for pricing/config surfaces
func All() []*Definition {
	return []*Definition{registry[TierFree], registry[TierPro], registry[TierUltimate]}
}
