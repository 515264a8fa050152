package personality

import (
	"bondhu/internal/model"
	"fmt"
	"sync"
)

// QuestionBank is an immutable, validated set of assessment items
type QuestionBank struct {
	questions []model.Question
	byID      map[int]model.Question
	byTrait   map[model.Trait][]model.Question
}

// NewQuestionBank validates the questions and builds the lookup tables
func NewQuestionBank(questions []model.Question) (*QuestionBank, error) {
	b := &QuestionBank{
		questions: make([]model.Question, len(questions)),
		byID:      make(map[int]model.Question, len(questions)),
		byTrait:   make(map[model.Trait][]model.Question, len(model.Traits)),
	}
	copy(b.questions, questions)

	for _, q := range b.questions {
		if q.ID <= 0 {
			return nil, fmt.Errorf("%w: question id %d must be positive", ErrInvalidQuestion, q.ID)
		}
		if !q.TraitID.Valid() {
			return nil, fmt.Errorf("%w: question %d has unknown trait %q", ErrInvalidQuestion, q.ID, q.TraitID)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateQuestion, q.ID)
		}
		b.byID[q.ID] = q
		b.byTrait[q.TraitID] = append(b.byTrait[q.TraitID], q)
	}

	for _, t := range model.Traits {
		if len(b.byTrait[t]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTraitGroup, t)
		}
	}
	return b, nil
}

// Questions returns a copy of the items in presentation order
func (b *QuestionBank) Questions() []model.Question {
	out := make([]model.Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Len is the number of items in the bank
func (b *QuestionBank) Len() int {
	return len(b.questions)
}

// Question looks up an item by id
func (b *QuestionBank) Question(id int) (model.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

var (
	defaultBank     *QuestionBank
	defaultBankOnce sync.Once
)

// DefaultBank returns the built-in 15 item Big Five questionnaire
func DefaultBank() *QuestionBank {
	defaultBankOnce.Do(func() {
		b, err := NewQuestionBank(defaultQuestions())
		if err != nil {
			panic(fmt.Sprintf("personality: default question bank is misconfigured: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

func defaultQuestions() []model.Question {
	return []model.Question{
		// Openness
		{ID: 1, TraitID: model.TraitOpenness, Text: "I enjoy trying new things and exploring unfamiliar ideas."},
		{ID: 2, TraitID: model.TraitOpenness, Text: "I have a vivid imagination and like thinking about abstract concepts."},
		{ID: 3, TraitID: model.TraitOpenness, IsReversed: true, Text: "I prefer sticking to routines over experimenting with something different."},

		// Conscientiousness
		{ID: 4, TraitID: model.TraitConscientiousness, Text: "I like to plan my day and keep things organized."},
		{ID: 5, TraitID: model.TraitConscientiousness, Text: "I follow through on tasks even when they get boring."},
		{ID: 6, TraitID: model.TraitConscientiousness, IsReversed: true, Text: "I often leave things until the last minute."},

		// Extraversion
		{ID: 7, TraitID: model.TraitExtraversion, Text: "I feel energized after spending time with other people."},
		{ID: 8, TraitID: model.TraitExtraversion, Text: "I find it easy to start conversations with new people."},
		{ID: 9, TraitID: model.TraitExtraversion, IsReversed: true, Text: "I need a lot of quiet time alone to recharge."},

		// Agreeableness
		{ID: 10, TraitID: model.TraitAgreeableness, Text: "I care deeply about how other people are feeling."},
		{ID: 11, TraitID: model.TraitAgreeableness, Text: "I try to avoid arguments and look for common ground."},
		{ID: 12, TraitID: model.TraitAgreeableness, IsReversed: true, Text: "I can be blunt, even when it might hurt someone's feelings."},

		// Neuroticism
		{ID: 13, TraitID: model.TraitNeuroticism, Text: "I worry about things more than most people do."},
		{ID: 14, TraitID: model.TraitNeuroticism, Text: "My mood can change quickly when something goes wrong."},
		{ID: 15, TraitID: model.TraitNeuroticism, IsReversed: true, Text: "I stay calm and relaxed in stressful situations."},
	}
}
