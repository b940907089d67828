package platforms

import (
	"fmt"
	"strings"

	"github.com/postforge/server/internal/tiers"
)

// platform keys
const (
	LinkedIn  = "linkedin"
	Facebook  = "facebook"
	Instagram = "instagram"
	TikTok    = "tiktok"
	YouTube   = "youtube"
	Twitter   = "twitter"
)

// registry is the process-wide platform table. Read-only after init.
var registry = map[string]*Definition{
	LinkedIn: {
		Key:                LinkedIn,
		Name:               "LinkedIn",
		Enabled:            true,
		OAuthImplemented:   true,
		PostingImplemented: true,
		CharLimits:         CharLimits{Min: 150, Max: 3000, Optimal: 300},
		HashtagLimits:      HashtagLimits{Min: 2, Max: 5},
		ImageSpecs:         ImageSpecs{MaxSizeMB: 25, MaxCount: 1, Formats: []string{"jpg", "jpeg", "png", "gif"}},
		Style: ContentStyle{
			Tone:         "Professional but authentic",
			Focus:        "Business insights and professional growth",
			Engagement:   "End with thoughtful questions",
			HashtagStyle: "Professional industry tags",
		},
	},
	Facebook: {
		Key:                Facebook,
		Name:               "Facebook",
		Enabled:            true,
		OAuthImplemented:   true,
		PostingImplemented: true,
		CharLimits:         CharLimits{Min: 100, Max: 63206, Optimal: 250},
		HashtagLimits:      HashtagLimits{Min: 1, Max: 3},
		ImageSpecs:         ImageSpecs{MaxSizeMB: 25, MaxCount: 10, Formats: []string{"jpg", "jpeg", "png", "gif"}},
		Style: ContentStyle{
			Tone:         "Conversational and community-focused",
			Focus:        "Stories and community building",
			Engagement:   "Encourage discussion and shares",
			HashtagStyle: "Broad community tags",
		},
	},
	Instagram: {
		Key:                Instagram,
		Name:               "Instagram",
		Enabled:            true,
		OAuthImplemented:   false,
		PostingImplemented: false,
		CharLimits:         CharLimits{Min: 50, Max: 2200, Optimal: 150},
		HashtagLimits:      HashtagLimits{Min: 5, Max: 30},
		ImageSpecs:         ImageSpecs{MaxSizeMB: 25, MaxCount: 10, Formats: []string{"jpg", "jpeg", "png"}},
		Style: ContentStyle{
			Tone:         "Visual-friendly and engaging",
			Focus:        "Strong hooks and visual storytelling",
			Engagement:   "Call-to-action and interaction prompts",
			HashtagStyle: "Mix of niche and trending tags",
		},
	},
	TikTok: {
		Key:                TikTok,
		Name:               "TikTok",
		Enabled:            true,
		OAuthImplemented:   false,
		PostingImplemented: false,
		CharLimits:         CharLimits{Min: 30, Max: 2200, Optimal: 100},
		HashtagLimits:      HashtagLimits{Min: 3, Max: 10},
		ImageSpecs:         ImageSpecs{MaxSizeMB: 25, MaxCount: 1, Formats: []string{"jpg", "jpeg", "png", "gif", "mp4"}},
		Style: ContentStyle{
			Tone:         "Casual, authentic, and trendy",
			Focus:        "Entertainment and quick tips",
			Engagement:   "Hook viewers in first 3 seconds",
			HashtagStyle: "Trending and viral hashtags",
		},
	},
	YouTube: {
		Key:                YouTube,
		Name:               "YouTube",
		Enabled:            true,
		OAuthImplemented:   false,
		PostingImplemented: false,
		CharLimits:         CharLimits{Min: 100, Max: 5000, Optimal: 500},
		HashtagLimits:      HashtagLimits{Min: 3, Max: 15},
		ImageSpecs:         ImageSpecs{MaxSizeMB: 25, MaxCount: 1, Formats: []string{"jpg", "jpeg", "png"}},
		Style: ContentStyle{
			Tone:         "Descriptive and keyword-rich",
			Focus:        "SEO optimization and discoverability",
			Engagement:   "Include timestamps and links",
			HashtagStyle: "SEO-focused keyword tags",
		},
	},
	Twitter: {
		Key:                Twitter,
		Name:               "Twitter/X",
		Enabled:            true,
		OAuthImplemented:   false,
		PostingImplemented: false,
		CharLimits:         CharLimits{Min: 10, Max: 280, Optimal: 200},
		HashtagLimits:      HashtagLimits{Min: 1, Max: 2},
		ImageSpecs:         ImageSpecs{MaxSizeMB: 5, MaxCount: 4, Formats: []string{"jpg", "jpeg", "png", "gif"}},
		Style: ContentStyle{
			Tone:         "Concise and punchy",
			Focus:        "Quick thoughts and commentary",
			Engagement:   "Encourage retweets and replies",
			HashtagStyle: "Trending topics and keywords",
		},
	},
}

// stable iteration order for list functions
var ordered = []string{LinkedIn, Facebook, Instagram, TikTok, YouTube, Twitter}

// returns the platform definition for a key, or nil when the key is
// unknown. Lookup is case-insensitive; unknown keys never error.
func Find(key string) *Definition {
	return registry[strings.ToLower(key)]
}

// reports whether the platform exists and is enabled
func Supported(key string) bool {
	def := Find(key)
	return def != nil && def.Enabled
}

// returns all registered platforms
func All() []*Definition {
	out := make([]*Definition, 0, len(ordered))
	for _, key := range ordered {
		out = append(out, registry[key])
	}

	return out
}

// returns platforms that are enabled
func EnabledPlatforms() []*Definition {
	out := make([]*Definition, 0, len(ordered))

	for _, key := range ordered {
		if def := registry[key]; def.Enabled {
			out = append(out, def)
		}
	}

	return out
}

// returns platforms with both OAuth and posting implemented
func ReadyForPosting() []*Definition {
	out := make([]*Definition, 0, len(ordered))

	for _, key := range ordered {
		if def := registry[key]; def.OAuthImplemented && def.PostingImplemented {
			out = append(out, def)
		}
	}

	return out
}

// returns the platforms a tier can actually post to: the intersection of
// ReadyForPosting and the tier's allowed set
func AvailableToTier(tier *tiers.Definition) []*Definition {
	ready := ReadyForPosting()

	if tier.Platforms.All {
		return ready
	}

	out := make([]*Definition, 0, len(ready))

	for _, def := range ready {
		if tier.Platforms.Allows(def.Key) {
			out = append(out, def)
		}
	}

	return out
}

// renders the platform's style hints as an AI instruction block
func (d *Definition) ContentHints() string {
	var b strings.Builder

	b.WriteString("CONTENT STYLE:\n")
	b.WriteString("- " + d.Style.Tone + "\n")
	b.WriteString("- " + d.Style.Focus + "\n")
	b.WriteString("- " + d.Style.Engagement + "\n")
	fmt.Fprintf(&b, "- Include %d-%d relevant hashtags\n", d.HashtagLimits.Min, d.HashtagLimits.Max)
	fmt.Fprintf(&b, "- Aim for %d words (%d-%d range)", d.CharLimits.Optimal, d.CharLimits.Min, d.CharLimits.Max)

	return b.String()
}

// returns the generic style block used when a platform key fails lookup.
// Callers must never error on unknown platforms; they fall back to this.
func FallbackContentHints() string {
	return "CONTENT STYLE:\n" +
		"- Engaging and platform-neutral\n" +
		"- Universal appeal\n" +
		"- 2-5 relevant hashtags\n" +
		"- Aim for 250 words"
}

// merges tier and platform image constraints, taking the stricter of each
func (d *Definition) ImageLimitsForTier(tier *tiers.Definition) tiers.ImageLimits {
	limits := tiers.ImageLimits{
		MaxSizeMB:  min(tier.Images.MaxSizeMB, d.ImageSpecs.MaxSizeMB),
		MaxPerPost: min(tier.Images.MaxPerPost, d.ImageSpecs.MaxCount),
		CanUpload:  tier.Images.CanUpload,
	}

	for _, format := range tier.Images.AllowedFormats {
		for _, supported := range d.ImageSpecs.Formats {
			if format == supported {
				limits.AllowedFormats = append(limits.AllowedFormats, format)
				break
			}
		}
	}

	return limits
}
