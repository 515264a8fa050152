package personality

import (
	"bondhu/internal/model"
	"fmt"
)

// Band cut points: scores up to lowMax are low, up to mediumMax are medium
const (
	lowMax    = 30
	mediumMax = 70
)

// ClassifyBand maps a 0-100 score to its qualitative band
func ClassifyBand(score int) model.Band {
	switch {
	case score <= lowMax:
		return model.BandLow
	case score <= mediumMax:
		return model.BandMedium
	default:
		return model.BandHigh
	}
}

type traitText struct {
	description string
	adaptation  string
	growth      []string
}

var insightTable = map[model.Trait]map[model.Band]traitText{
	model.TraitOpenness: {
		model.BandHigh: {
			description: "I love exploring new ideas, experiences and ways of seeing the world. Curiosity and imagination are a big part of who I am.",
			adaptation:  "Bondhu will bring creative ideas, thought-provoking questions and fresh perspectives into your conversations.",
			growth: []string{
				"Channel your curiosity into one creative project you can finish",
				"Balance exploring new ideas with grounding routines",
				"Share your ideas with others to turn imagination into action",
			},
		},
		model.BandMedium: {
			description: "I enjoy some new experiences while still valuing what is familiar. I am open to ideas when they feel relevant to my life.",
			adaptation:  "Bondhu will mix practical suggestions with the occasional new idea, keeping things relatable.",
			growth: []string{
				"Try one small new experience each week",
				"Read or listen to something outside your usual interests",
			},
		},
		model.BandLow: {
			description: "I prefer what is practical, familiar and proven. I feel most comfortable with clear routines and concrete ideas.",
			adaptation:  "Bondhu will keep conversations practical and down to earth, focusing on concrete steps rather than abstract ideas.",
			growth: []string{
				"Experiment with one small change to a daily routine",
				"Stay curious about one perspective different from your own",
			},
		},
	},
	model.TraitConscientiousness: {
		model.BandHigh: {
			description: "I am organized, reliable and goal-driven. I like having a plan and following through on it.",
			adaptation:  "Bondhu will offer structured guidance, clear action steps and help you track your progress.",
			growth: []string{
				"Leave room for rest so high standards do not turn into burnout",
				"Practice self-compassion when plans do not go perfectly",
				"Schedule unstructured time just for fun",
			},
		},
		model.BandMedium: {
			description: "I can be organized when it matters, but I also like some flexibility and spontaneity.",
			adaptation:  "Bondhu will suggest light structure when it helps while keeping things flexible.",
			growth: []string{
				"Pick one area of life to build a simple routine around",
				"Break bigger goals into small, visible steps",
			},
		},
		model.BandLow: {
			description: "I prefer going with the flow over strict plans. Structure can feel restrictive to me.",
			adaptation:  "Bondhu will keep suggestions small and flexible and celebrate every step without pressure.",
			growth: []string{
				"Start with one tiny daily habit you can keep easily",
				"Use reminders for the few things that really matter",
				"Reward yourself for finishing small tasks",
			},
		},
	},
	model.TraitExtraversion: {
		model.BandHigh: {
			description: "I draw energy from people and social activity. I enjoy lively conversation and being around others.",
			adaptation:  "Bondhu will be upbeat and engaging, and will encourage social activities that keep your energy up.",
			growth: []string{
				"Make time for quiet reflection between social plans",
				"Practice deep listening in conversations",
			},
		},
		model.BandMedium: {
			description: "I enjoy socializing but also value my alone time. My energy depends on the situation.",
			adaptation:  "Bondhu will balance energetic chats with calmer, reflective moments depending on your mood.",
			growth: []string{
				"Notice which activities recharge you and plan around them",
				"Reach out to one friend when you feel low on energy",
			},
		},
		model.BandLow: {
			description: "I recharge best in quiet settings and prefer meaningful one-on-one conversations to large groups.",
			adaptation:  "Bondhu will keep a calm pace, give you space to think and never push you to share more than you want.",
			growth: []string{
				"Nurture a few close connections that feel safe",
				"Try small, low-pressure social steps at your own pace",
				"Protect your alone time without guilt",
			},
		},
	},
	model.TraitAgreeableness: {
		model.BandHigh: {
			description: "I am caring, cooperative and sensitive to how others feel. Harmony in my relationships matters a lot to me.",
			adaptation:  "Bondhu will be warm and validating, and will gently remind you to care for yourself too.",
			growth: []string{
				"Practice saying no when you need to",
				"Make your own needs as important as others' needs",
			},
		},
		model.BandMedium: {
			description: "I am generally cooperative but can stand my ground when something matters to me.",
			adaptation:  "Bondhu will be supportive while also offering honest perspectives when helpful.",
			growth: []string{
				"Express disagreement calmly when it matters",
				"Notice when you put others first out of habit",
			},
		},
		model.BandLow: {
			description: "I am direct and value honesty over keeping the peace. I think critically and question things.",
			adaptation:  "Bondhu will be straightforward and honest with you, without unnecessary sugar-coating.",
			growth: []string{
				"Try seeing situations from the other person's point of view",
				"Balance honesty with a little extra warmth",
				"Acknowledge others' feelings before sharing your view",
			},
		},
	},
	model.TraitNeuroticism: {
		model.BandHigh: {
			description: "I feel emotions deeply and can be affected by stress and worry. Things can feel overwhelming at times.",
			adaptation:  "Bondhu will be extra gentle and reassuring, offering grounding techniques and steady support when things feel heavy.",
			growth: []string{
				"Practice a short breathing or grounding exercise daily",
				"Write down worries to look at them more clearly",
				"Reach out for support early when stress builds up",
			},
		},
		model.BandMedium: {
			description: "I experience normal ups and downs. Stress affects me sometimes, but I can usually find my balance again.",
			adaptation:  "Bondhu will check in on how you are feeling and offer a mix of comfort and practical coping strategies.",
			growth: []string{
				"Notice your early stress signals",
				"Build a small toolkit of activities that calm you",
			},
		},
		model.BandLow: {
			description: "I stay calm and steady under pressure. Setbacks do not shake me easily.",
			adaptation:  "Bondhu will focus on growth and problem solving while still making space for feelings when they come up.",
			growth: []string{
				"Stay in touch with emotions that are easy to overlook",
				"Use your steadiness to support people around you",
			},
		},
	},
}

// GenerateTraitInsights interprets every trait score in canonical order
func GenerateTraitInsights(scores model.PersonalityScores) []model.TraitInsight {
	mustValidScores(scores)

	insights := make([]model.TraitInsight, 0, len(model.Traits))
	for _, t := range model.Traits {
		score := scores.Score(t)
		band := ClassifyBand(score)
		insights = append(insights, model.TraitInsight{
			TraitID:           t,
			Score:             score,
			Level:             band,
			Description:       TraitDescription(t, band),
			BondhuAdaptation:  TraitAdaptation(t, band),
			GrowthSuggestions: GrowthSuggestions(t, band),
		})
	}
	return insights
}

// TraitDescription is the first-person description of a trait at a band
func TraitDescription(t model.Trait, band model.Band) string {
	return insightTable[t][band].description
}

// TraitAdaptation describes how the companion adapts to a trait at a band
func TraitAdaptation(t model.Trait, band model.Band) string {
	return insightTable[t][band].adaptation
}

// GrowthSuggestions returns a fresh copy of the growth suggestions for a trait at a band
func GrowthSuggestions(t model.Trait, band model.Band) []string {
	src := insightTable[t][band].growth
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func mustValidScores(scores model.PersonalityScores) {
	if !scores.InRange() {
		panic(fmt.Sprintf("personality: scores out of range: %+v", scores))
	}
}
