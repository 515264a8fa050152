package personality

import (
	"bondhu/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreDescription(t *testing.T) {
	cases := map[int]string{
		0:   "(Low)",
		30:  "(Low)",
		31:  "(Moderate)",
		70:  "(Moderate)",
		71:  "(High)",
		100: "(High)",
	}
	for score, want := range cases {
		assert.Equal(t, want, ScoreDescription(score), "score %d", score)
	}
}

func TestGenerateLLMContext_PromptCarriesScores(t *testing.T) {
	scores := model.PersonalityScores{
		Openness: 85, Conscientiousness: 30, Extraversion: 70, Agreeableness: 31, Neuroticism: 100,
	}
	ctx := GenerateLLMContext(scores)

	assert.Contains(t, ctx.SystemPrompt, "Openness: 85/100 (High)")
	assert.Contains(t, ctx.SystemPrompt, "Conscientiousness: 30/100 (Low)")
	assert.Contains(t, ctx.SystemPrompt, "Extraversion: 70/100 (Moderate)")
	assert.Contains(t, ctx.SystemPrompt, "Agreeableness: 31/100 (Moderate)")
	assert.Contains(t, ctx.SystemPrompt, "Neuroticism: 100/100 (High)")
}

func TestGenerateLLMContext_PromptCarriesFields(t *testing.T) {
	ctx := GenerateLLMContext(model.PersonalityScores{
		Openness: 90, Conscientiousness: 80, Extraversion: 10, Agreeableness: 75, Neuroticism: 85,
	})

	for _, field := range []string{
		ctx.ConversationStyle,
		ctx.CommunicationPreferences,
		ctx.SupportApproach,
		ctx.StressResponse,
		ctx.MotivationStyle,
		ctx.InteractionFrequency,
		ctx.LanguageStyle,
		ctx.ConflictApproach,
		ctx.EmotionalSupport,
		strings.Join(ctx.TopicPreferences, ", "),
	} {
		require.NotEmpty(t, field)
		assert.Contains(t, ctx.SystemPrompt, field)
	}

	for _, block := range []string{"CORE PRINCIPLES", "LANGUAGE RULES", "RESPONSE STYLE", "CRISIS DETECTION", "bondhu", "dost"} {
		assert.Contains(t, ctx.SystemPrompt, block)
	}
}

func TestGenerateLLMContext_AdditiveFragments(t *testing.T) {
	ctx := GenerateLLMContext(model.PersonalityScores{
		Openness: 50, Conscientiousness: 90, Extraversion: 50, Agreeableness: 10, Neuroticism: 50,
	})
	assert.True(t, strings.HasPrefix(ctx.CommunicationPreferences, "Values direct, honest communication"))
	assert.Contains(t, ctx.CommunicationPreferences, "structured, organized responses")
	assert.Less(t,
		strings.Index(ctx.CommunicationPreferences, "direct"),
		strings.Index(ctx.CommunicationPreferences, "structured"))
}

func TestGenerateLLMContext_ThresholdsAreStrict(t *testing.T) {
	moderate := GenerateLLMContext(model.PersonalityScores{
		Openness: 70, Conscientiousness: 30, Extraversion: 30, Agreeableness: 70, Neuroticism: 30,
	})
	assert.Contains(t, moderate.ConversationStyle, "Balanced conversational energy")
	assert.Contains(t, moderate.StressResponse, "Moderately affected")
	assert.Empty(t, moderate.TopicPreferences)
	assert.Contains(t, moderate.SystemPrompt, "open to any topic")

	high := GenerateLLMContext(model.PersonalityScores{
		Openness: 71, Conscientiousness: 29, Extraversion: 71, Agreeableness: 71, Neuroticism: 29,
	})
	assert.Contains(t, high.ConversationStyle, "Energetic and engaging")
	assert.Contains(t, high.StressResponse, "resilient")
}

func TestTopicPreferences_TraitOrder(t *testing.T) {
	topics := topicPreferences(model.PersonalityScores{
		Openness: 90, Conscientiousness: 90, Extraversion: 90, Agreeableness: 90, Neuroticism: 90,
	})
	assert.Equal(t, []string{
		"creative arts and music", "philosophy and big ideas", "learning new things",
		"social events and friends", "group activities",
		"goals and productivity", "self-improvement",
		"relationships and helping others",
	}, topics)
}

func TestTopicPreferences_NeuroticismDoesNotGate(t *testing.T) {
	base := model.PersonalityScores{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50}
	low := base
	low.Neuroticism = 0
	high := base
	high.Neuroticism = 100
	assert.Equal(t, topicPreferences(low), topicPreferences(high))
}

func TestGenerateLLMContext_Pure(t *testing.T) {
	scores := model.PersonalityScores{Openness: 12, Conscientiousness: 45, Extraversion: 88, Agreeableness: 60, Neuroticism: 73}
	assert.Equal(t, GenerateLLMContext(scores), GenerateLLMContext(scores))
}

func TestGenerateLLMContext_PanicsOnOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		GenerateLLMContext(model.PersonalityScores{Agreeableness: 150})
	})
}
