package personality

import (
	"bondhu/internal/model"
	"math"
	"sort"
)

// CalculateScores scores responses against the default question bank
func CalculateScores(responses model.ResponseMap) (model.PersonalityScores, error) {
	return DefaultBank().CalculateScores(responses)
}

// CalculateScores converts a complete response map into normalized trait scores.
// Every question must be answered exactly once with a value in [1,5].
func (b *QuestionBank) CalculateScores(responses model.ResponseMap) (model.PersonalityScores, error) {
	var scores model.PersonalityScores
	if err := b.validate(responses); err != nil {
		return scores, err
	}

	for _, t := range model.Traits {
		group := b.byTrait[t]
		sum := 0
		for _, q := range group {
			v := responses[q.ID]
			if q.IsReversed {
				v = reverse(v)
			}
			sum += v
		}
		avg := float64(sum) / float64(len(group))
		scores.Set(t, normalize(avg))
	}
	return scores, nil
}

func (b *QuestionBank) validate(responses model.ResponseMap) error {
	if len(responses) != len(b.questions) {
		return &ScoringError{Kind: KindIncompleteAssessment, Expected: len(b.questions), Got: len(responses)}
	}

	ids := make([]int, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if _, ok := b.byID[id]; !ok {
			return &ScoringError{Kind: KindUnknownQuestion, QuestionID: id}
		}
	}

	for _, q := range b.questions {
		v := responses[q.ID]
		if v < model.MinResponse || v > model.MaxResponse {
			return &ScoringError{Kind: KindInvalidResponseValue, QuestionID: q.ID, Value: v}
		}
	}
	return nil
}

// reverse flips a reverse-keyed answer: 1<->5, 2<->4, 3 stays
func reverse(v int) int {
	return model.MinResponse + model.MaxResponse - v
}

// normalize rescales a 1-5 average onto 0-100, rounding half up
func normalize(avg float64) int {
	return int(math.Floor((avg-1)/4*100 + 0.5))
}
