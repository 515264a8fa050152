package model

import "strings"

// Trait identifies one of the Big Five personality dimensions
type Trait string

const (
	TraitOpenness          Trait = "openness"
	TraitConscientiousness Trait = "conscientiousness"
	TraitExtraversion      Trait = "extraversion"
	TraitAgreeableness     Trait = "agreeableness"
	TraitNeuroticism       Trait = "neuroticism"
)

// Traits lists every trait in canonical order
var Traits = []Trait{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// Valid reports whether t is a known trait
func (t Trait) Valid() bool {
	switch t {
	case TraitOpenness, TraitConscientiousness, TraitExtraversion, TraitAgreeableness, TraitNeuroticism:
		return true
	}
	return false
}

// Name returns the display name of t
func (t Trait) Name() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Band is the qualitative level of a trait score
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Response value bounds for a single questionnaire item
const (
	MinResponse = 1
	MaxResponse = 5
)

// Question is a single assessment item
type Question struct {
	ID         int    `json:"id" bson:"id"`
	TraitID    Trait  `json:"traitId" bson:"traitId"`
	IsReversed bool   `json:"isReversed" bson:"isReversed"`
	Text       string `json:"text" bson:"text"`
}

// ResponseMap maps question id to a 1-5 response
type ResponseMap map[int]int

// Response is the storage form of one ResponseMap entry
type Response struct {
	QuestionID int `json:"questionId" bson:"questionId"`
	Value      int `json:"value" bson:"value"`
}

// PersonalityScores holds the normalized 0-100 score of every trait
type PersonalityScores struct {
	Openness          int `json:"openness" bson:"openness"`
	Conscientiousness int `json:"conscientiousness" bson:"conscientiousness"`
	Extraversion      int `json:"extraversion" bson:"extraversion"`
	Agreeableness     int `json:"agreeableness" bson:"agreeableness"`
	Neuroticism       int `json:"neuroticism" bson:"neuroticism"`
}

// Score returns the score for a trait
func (s PersonalityScores) Score(t Trait) int {
	switch t {
	case TraitOpenness:
		return s.Openness
	case TraitConscientiousness:
		return s.Conscientiousness
	case TraitExtraversion:
		return s.Extraversion
	case TraitAgreeableness:
		return s.Agreeableness
	case TraitNeuroticism:
		return s.Neuroticism
	}
	return 0
}

// Set assigns the score for a trait
func (s *PersonalityScores) Set(t Trait, score int) {
	switch t {
	case TraitOpenness:
		s.Openness = score
	case TraitConscientiousness:
		s.Conscientiousness = score
	case TraitExtraversion:
		s.Extraversion = score
	case TraitAgreeableness:
		s.Agreeableness = score
	case TraitNeuroticism:
		s.Neuroticism = score
	}
}

// InRange reports whether every score lies in [0,100]
func (s PersonalityScores) InRange() bool {
	for _, t := range Traits {
		if v := s.Score(t); v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// TraitInsight is the per-trait interpretation of a score
type TraitInsight struct {
	TraitID           Trait    `json:"traitId" bson:"traitId"`
	Score             int      `json:"score" bson:"score"`
	Level             Band     `json:"level" bson:"level"`
	Description       string   `json:"description" bson:"description"`
	BondhuAdaptation  string   `json:"bondhuAdaptation" bson:"bondhuAdaptation"`
	GrowthSuggestions []string `json:"growthSuggestions" bson:"growthSuggestions"`
}

// LLMPersonalityContext is the conversational profile handed to the companion model
type LLMPersonalityContext struct {
	ConversationStyle        string   `json:"conversationStyle" bson:"conversationStyle"`
	CommunicationPreferences string   `json:"communicationPreferences" bson:"communicationPreferences"`
	SupportApproach          string   `json:"supportApproach" bson:"supportApproach"`
	TopicPreferences         []string `json:"topicPreferences" bson:"topicPreferences"`
	StressResponse           string   `json:"stressResponse" bson:"stressResponse"`
	MotivationStyle          string   `json:"motivationStyle" bson:"motivationStyle"`
	InteractionFrequency     string   `json:"interactionFrequency" bson:"interactionFrequency"`
	LanguageStyle            string   `json:"languageStyle" bson:"languageStyle"`
	ConflictApproach         string   `json:"conflictApproach" bson:"conflictApproach"`
	EmotionalSupport         string   `json:"emotionalSupport" bson:"emotionalSupport"`
	SystemPrompt             string   `json:"systemPrompt" bson:"systemPrompt"`
}
