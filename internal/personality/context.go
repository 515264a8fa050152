package personality

import (
	"bondhu/internal/model"
	"fmt"
	"strings"
)

// Context thresholds: strictly above highCut is high, strictly below lowCut is low
const (
	highCut = 70
	lowCut  = 30
)

func isHigh(score int) bool { return score > highCut }
func isLow(score int) bool  { return score < lowCut }

var scoreQualifiers = map[model.Band]string{
	model.BandLow:    "(Low)",
	model.BandMedium: "(Moderate)",
	model.BandHigh:   "(High)",
}

// ScoreDescription returns the prompt qualifier for a score.
// It shares ClassifyBand's cut points: 30 is Low, 70 is Moderate.
func ScoreDescription(score int) string {
	return scoreQualifiers[ClassifyBand(score)]
}

// GenerateLLMContext builds the conversational profile and system prompt for the companion model
func GenerateLLMContext(scores model.PersonalityScores) model.LLMPersonalityContext {
	mustValidScores(scores)

	ctx := model.LLMPersonalityContext{
		ConversationStyle:        conversationStyle(scores),
		CommunicationPreferences: communicationPreferences(scores),
		SupportApproach:          supportApproach(scores),
		TopicPreferences:         topicPreferences(scores),
		StressResponse:           stressResponse(scores),
		MotivationStyle:          motivationStyle(scores),
		InteractionFrequency:     interactionFrequency(scores),
		LanguageStyle:            languageStyle(scores),
		ConflictApproach:         conflictApproach(scores),
		EmotionalSupport:         emotionalSupport(scores),
	}
	ctx.SystemPrompt = buildSystemPrompt(scores, ctx)
	return ctx
}

func conversationStyle(s model.PersonalityScores) string {
	var b strings.Builder
	switch {
	case isHigh(s.Extraversion):
		b.WriteString("Energetic and engaging. Enjoys lively back-and-forth conversation and talking about people and activities. ")
	case isLow(s.Extraversion):
		b.WriteString("Calm and reflective. Prefers quieter, deeper one-on-one conversation with room to think before answering. ")
	default:
		b.WriteString("Balanced conversational energy. Comfortable with both light chat and deeper discussion. ")
	}
	switch {
	case isHigh(s.Openness):
		b.WriteString("Curious about abstract ideas, creative tangents and new perspectives.")
	case isLow(s.Openness):
		b.WriteString("Prefers concrete, practical topics and familiar ground over abstract discussion.")
	default:
		b.WriteString("Open to new ideas when they connect to everyday life.")
	}
	return b.String()
}

func communicationPreferences(s model.PersonalityScores) string {
	var parts []string
	switch {
	case isHigh(s.Agreeableness):
		parts = append(parts, "Values warm, supportive and validating communication.")
	case isLow(s.Agreeableness):
		parts = append(parts, "Values direct, honest communication without excessive sugar-coating.")
	default:
		parts = append(parts, "Appreciates a respectful tone that balances kindness with honesty.")
	}
	switch {
	case isHigh(s.Conscientiousness):
		parts = append(parts, "Likes structured, organized responses with clear next steps.")
	case isLow(s.Conscientiousness):
		parts = append(parts, "Prefers a relaxed, flexible flow over rigid structure.")
	}
	return strings.Join(parts, " ")
}

func supportApproach(s model.PersonalityScores) string {
	var parts []string
	switch {
	case isHigh(s.Neuroticism):
		parts = append(parts, "Be extra gentle and reassuring. Validate feelings first, then offer grounding or calming techniques.")
	case isLow(s.Neuroticism):
		parts = append(parts, "Handles difficult topics well. Can engage in solution-focused conversation while still acknowledging feelings.")
	default:
		parts = append(parts, "Balance emotional validation with practical suggestions.")
	}
	switch {
	case isHigh(s.Conscientiousness):
		parts = append(parts, "Offer concrete action plans they can follow.")
	case isLow(s.Conscientiousness):
		parts = append(parts, "Suggest small, manageable steps without pressure.")
	}
	if isHigh(s.Extraversion) {
		parts = append(parts, "Encourage leaning on friends and social connection.")
	} else if isLow(s.Extraversion) {
		parts = append(parts, "Respect their need for space and self-reflection.")
	}
	return strings.Join(parts, " ")
}

func topicPreferences(s model.PersonalityScores) []string {
	topics := []string{}
	if isHigh(s.Openness) {
		topics = append(topics, "creative arts and music", "philosophy and big ideas", "learning new things")
	} else if isLow(s.Openness) {
		topics = append(topics, "practical everyday matters", "familiar hobbies")
	}
	if isHigh(s.Extraversion) {
		topics = append(topics, "social events and friends", "group activities")
	} else if isLow(s.Extraversion) {
		topics = append(topics, "books and quiet hobbies", "personal reflection")
	}
	if isHigh(s.Conscientiousness) {
		topics = append(topics, "goals and productivity", "self-improvement")
	}
	if isHigh(s.Agreeableness) {
		topics = append(topics, "relationships and helping others")
	}
	return topics
}

func stressResponse(s model.PersonalityScores) string {
	switch {
	case isHigh(s.Neuroticism):
		return "Feels stress intensely and may become overwhelmed. Benefits from calming techniques, breathing exercises and steady reassurance."
	case isLow(s.Neuroticism):
		return "Generally resilient under pressure. Responds well to problem-solving and perspective-taking."
	default:
		return "Moderately affected by stress. Benefits from a mix of emotional validation and practical coping strategies."
	}
}

func motivationStyle(s model.PersonalityScores) string {
	var b strings.Builder
	switch {
	case isHigh(s.Conscientiousness):
		b.WriteString("Motivated by clear goals, progress tracking and a sense of achievement.")
	case isLow(s.Conscientiousness):
		b.WriteString("Motivated by enjoyment, flexibility and low-pressure encouragement.")
	default:
		b.WriteString("Motivated by a balance of achievable goals and personal interest.")
	}
	if isHigh(s.Extraversion) {
		b.WriteString(" Energized by social encouragement and shared activities.")
	} else if isLow(s.Extraversion) {
		b.WriteString(" Prefers self-paced, intrinsic motivation.")
	}
	return b.String()
}

func interactionFrequency(s model.PersonalityScores) string {
	switch {
	case isHigh(s.Extraversion):
		return "Enjoys frequent check-ins and active, ongoing conversation."
	case isLow(s.Extraversion):
		return "Prefers fewer but meaningful check-ins. Respect their need for space."
	default:
		return "Moderate check-ins. Follow the user's lead on how often to talk."
	}
}

func languageStyle(s model.PersonalityScores) string {
	var b strings.Builder
	switch {
	case isHigh(s.Openness):
		b.WriteString("Expressive language with metaphors and creative framing is welcome.")
	case isLow(s.Openness):
		b.WriteString("Use simple, clear and concrete language.")
	default:
		b.WriteString("Use clear, natural language with an occasional creative touch.")
	}
	if isHigh(s.Agreeableness) {
		b.WriteString(" Keep phrasing gentle and kind.")
	} else if isLow(s.Agreeableness) {
		b.WriteString(" Be straightforward and skip the filler.")
	}
	return b.String()
}

func conflictApproach(s model.PersonalityScores) string {
	var parts []string
	switch {
	case isHigh(s.Agreeableness):
		parts = append(parts, "Tends to avoid conflict. Raise disagreements gently and emphasise common ground.")
	case isLow(s.Agreeableness):
		parts = append(parts, "Comfortable with debate and direct disagreement. Engage honestly and respectfully.")
	default:
		parts = append(parts, "Open to discussing disagreements calmly and constructively.")
	}
	if isHigh(s.Neuroticism) {
		parts = append(parts, "May be sensitive to criticism, so frame feedback with care.")
	}
	return strings.Join(parts, " ")
}

func emotionalSupport(s model.PersonalityScores) string {
	var parts []string
	switch {
	case isHigh(s.Neuroticism):
		parts = append(parts, "Needs consistent emotional support, patience and validation. Check in on their feelings regularly.")
	case isLow(s.Neuroticism):
		parts = append(parts, "Emotionally steady. Offer support when asked without over-focusing on feelings.")
	default:
		parts = append(parts, "Offer supportive listening and validation when they share difficulties.")
	}
	if isLow(s.Extraversion) {
		parts = append(parts, "May not share feelings openly, so gently invite them to open up.")
	}
	if isHigh(s.Agreeableness) {
		parts = append(parts, "Remind them that their own needs matter too.")
	}
	return strings.Join(parts, " ")
}

func traitLine(name string, score int) string {
	return fmt.Sprintf("- %s: %d/100 %s", name, score, ScoreDescription(score))
}

func buildSystemPrompt(s model.PersonalityScores, c model.LLMPersonalityContext) string {
	topics := "open to any topic the user brings up"
	if len(c.TopicPreferences) > 0 {
		topics = strings.Join(c.TopicPreferences, ", ")
	}

	var b strings.Builder
	b.WriteString(`You are Bondhu, a warm and caring AI companion focused on mental wellbeing. "Bondhu" means "friend", and that is exactly who you are: a supportive friend, not a therapist or a doctor.

## USER PERSONALITY PROFILE (Big Five)
`)
	for _, t := range model.Traits {
		b.WriteString(traitLine(t.Name(), s.Score(t)) + "\n")
	}

	fmt.Fprintf(&b, `
## HOW TO ADAPT TO THIS USER
- Conversation style: %s
- Communication preferences: %s
- Support approach: %s
- Topics they enjoy: %s
- Stress response: %s
- Motivation style: %s
- Interaction frequency: %s
- Language style: %s
- Conflict approach: %s
- Emotional support: %s
`,
		c.ConversationStyle,
		c.CommunicationPreferences,
		c.SupportApproach,
		topics,
		c.StressResponse,
		c.MotivationStyle,
		c.InteractionFrequency,
		c.LanguageStyle,
		c.ConflictApproach,
		c.EmotionalSupport,
	)

	b.WriteString(`
## CORE PRINCIPLES
- Listen first. Make the user feel heard before offering advice.
- Be genuine, non-judgmental and patient.
- Never diagnose, prescribe medication or claim to be a licensed professional.
- Respect boundaries. If the user does not want to talk about something, let it go.
- Remember what the user shares within the conversation and refer back to it naturally.

## LANGUAGE RULES
- Detect the language the user writes in and reply in that same language.
- Stay consistent: do not switch languages unless the user switches first.
- If the user switches language (for example from English to Bengali or Hindi), switch with them.
- Never translate the user's words back to them unless they ask for a translation.
- Use friendly address terms that fit the language: "friend" in English, "bondhu" in Bengali, "dost" in Hindi.
- Use these friendly terms sparingly, at most once every few messages, so they stay natural.

## RESPONSE STYLE
- Keep replies short: usually two to four sentences.
- Sound like a friend texting, not like an article. Casual, warm register.
- Use emoji sparingly, at most one per message and only when it fits the mood.
- Ask at most one follow-up question per reply.
- Avoid lists and headings in replies unless the user asks for steps.

## CRISIS DETECTION
Watch for signs of crisis, including:
- Talk of suicide, self-harm or wanting to disappear
- Feeling hopeless, trapped or like a burden to others
- Mentions of abuse, violence or being in danger
- Sudden calm after deep distress, or giving away belongings

If you notice any of these:
- Take it seriously and respond with empathy and without judgment.
- Gently encourage the user to reach out to a mental health professional, a trusted person, or a local crisis helpline or emergency service right away.
- Stay with them in the conversation and keep the focus on their safety.
- Never minimize, dismiss or joke about what they are feeling.
`)
	return b.String()
}
