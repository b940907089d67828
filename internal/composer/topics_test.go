package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicPool_SizeAndContents(t *testing.T) {
	profile := Profile{
		ContentMode: ModeBusiness,
		Skills:      []string{"go", "sql", "docker"},
	}

	pool := TopicPool(profile)

	// 5 mode topics + 3 skills x 2 templates
	require.Len(t, pool, 11)
	assert.Contains(t, pool, "Share practical tips about go")
	assert.Contains(t, pool, "Discuss recent developments in sql")
	assert.Contains(t, pool, "Share a lesson learned from a recent project challenge")
}

func TestTopicPool_SkillsCappedAtThree(t *testing.T) {
	profile := Profile{
		ContentMode: ModeInfluencer,
		Skills:      []string{"a", "b", "c", "d", "e"},
	}

	pool := TopicPool(profile)

	assert.Len(t, pool, 5+3*2)
	assert.NotContains(t, pool, "Share practical tips about d")
}

func TestTopicPool_NoSkills(t *testing.T) {
	pool := TopicPool(Profile{ContentMode: ModePersonal})

	assert.Len(t, pool, 5)
}

func TestTopicPool_UnknownModeFallsBackToBusiness(t *testing.T) {
	pool := TopicPool(Profile{ContentMode: "educator"})

	require.NotEmpty(t, pool)
	assert.Equal(t, modeRegistry[ModeBusiness].Topics[0], pool[0])
}

func TestRandomTopic_MemberOfPool(t *testing.T) {
	profile := Profile{
		ContentMode: ModeBusiness,
		Skills:      []string{"go", "sql", "docker"},
	}

	pool := TopicPool(profile)
	members := make(map[string]bool, len(pool))

	for _, topic := range pool {
		members[topic] = true
	}

	// repetition across draws is accepted; membership is the contract
	for range 50 {
		assert.True(t, members[RandomTopic(profile)])
	}
}
