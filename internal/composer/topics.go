package composer

import "math/rand/v2"

// topics derived per skill when auto-selecting; only the first few skills
// contribute to keep the pool balanced
const maxSkillTopics = 3

// TopicPool returns the candidate topics for auto-selection: the content
// mode's topic list extended with two templated topics per skill (first
// three skills only). Unrecognized modes draw from the business topics so
// the pool is never empty.
func TopicPool(profile Profile) []string {
	mode := ModeFor(profile.ContentMode)
	if mode == nil {
		mode = modeRegistry[ModeBusiness]
	}

	pool := make([]string, 0, len(mode.Topics)+maxSkillTopics*2)
	pool = append(pool, mode.Topics...)

	skills := profile.Skills
	if len(skills) > maxSkillTopics {
		skills = skills[:maxSkillTopics]
	}

	for _, skill := range skills {
		pool = append(pool,
			"Share practical tips about "+skill,
			"Discuss recent developments in "+skill,
		)
	}

	return pool
}

// RandomTopic picks one topic uniformly at random from the pool. Topics
// are not tracked across calls; repetition is possible and accepted.
func RandomTopic(profile Profile) string {
	pool := TopicPool(profile)
	return pool[rand.IntN(len(pool))]
}
