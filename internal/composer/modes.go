package composer

// content mode keys
const (
	ModeBusiness   = "business"
	ModeInfluencer = "influencer"
	ModePersonal   = "personal"
)

// Mode configures a persona/tone for the AI role instruction
type Mode struct {
	Key             string
	Name            string
	Description     string
	Role            string
	Topics          []string
	ExtraGuidelines []string
}

// role used when a content mode is not in the registry; composing must
// never fail for unrecognized modes
const genericRole = "You are a social media content creator. Create appropriate and engaging posts."

// modeRegistry is the process-wide content mode table. Read-only after init.
var modeRegistry = map[string]*Mode{
	ModeBusiness: {
		Key:         ModeBusiness,
		Name:        "Business",
		Description: "Professional & corporate tone",
		Role: "You are a professional business content creator specializing in authentic, " +
			"value-driven social media posts. You help small business owners share their " +
			"expertise and build trust with their audience without corporate buzzwords or " +
			"salesy language.",
		Topics: []string{
			"Share a lesson learned from a recent project challenge",
			"Discuss the importance of transparent business practices in your industry",
			"Explain a technical concept in simple terms for non-technical business owners",
			"Share insights about process optimization or automation",
			"Discuss industry trends and their impact on small businesses",
		},
		ExtraGuidelines: []string{
			"Focus on providing real business value and insights",
			"Share practical experience and lessons learned",
			"Position as a trusted expert, not a salesperson",
		},
	},
	ModeInfluencer: {
		Key:         ModeInfluencer,
		Name:        "Influencer",
		Description: "Engaging & social media focused",
		Role: "You are a social media strategist helping influencers create engaging, " +
			"authentic content that builds genuine connections with their audience while " +
			"showcasing their unique personality and expertise.",
		Topics: []string{
			"Share behind-the-scenes of your work process",
			"Give advice to someone starting in your field",
			"Share a success story from your experience",
			"Discuss current industry trends and your perspective",
			"Share productivity tips or tools you use daily",
		},
		ExtraGuidelines: []string{
			"Focus on building genuine connections",
			"Share personal stories and experiences",
			"Encourage engagement and conversation",
		},
	},
	ModePersonal: {
		Key:         ModePersonal,
		Name:        "Personal",
		Description: "Casual & authentic voice",
		Role: "You are helping create authentic personal social media content that feels " +
			"genuine and relatable while maintaining professionalism appropriate for the " +
			"person's career and interests.",
		Topics: []string{
			"Share a personal insight from your professional journey",
			"Discuss work-life balance in your field",
			"Share learning experiences or growth moments",
			"Discuss challenges you've overcome in your career",
			"Share appreciation for your team or community",
		},
		ExtraGuidelines: []string{
			"Keep it genuine and relatable",
			"Share personal perspectives and emotions",
			"Balance professional and personal elements",
		},
	},
}

var modeOrder = []string{ModeBusiness, ModeInfluencer, ModePersonal}

// returns the mode definition for a key, or nil when unrecognized
func ModeFor(key string) *Mode {
	return modeRegistry[key]
}

// reports whether a content mode is in the fixed enumeration
func ModeSupported(key string) bool {
	return modeRegistry[key] != nil
}

// returns all content modes in stable order
func Modes() []*Mode {
	out := make([]*Mode, 0, len(modeOrder))
	for _, key := range modeOrder {
		out = append(out, modeRegistry[key])
	}

	return out
}

// returns the AI role instruction for a mode, or the generic role for
// unrecognized keys
func roleFor(mode string) string {
	if m := ModeFor(mode); m != nil {
		return m.Role
	}

	return genericRole
}

// returns the extra guidelines for a mode; empty for unrecognized keys
func guidelinesFor(mode string) []string {
	if m := ModeFor(mode); m != nil {
		return m.ExtraGuidelines
	}

	return nil
}
