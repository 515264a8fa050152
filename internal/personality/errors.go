package personality

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteAssessment = errors.New("incomplete assessment")
	ErrUnknownQuestion      = errors.New("unknown question")
	ErrInvalidResponseValue = errors.New("invalid response value")
	ErrEmptyTraitGroup      = errors.New("trait has no questions")
	ErrDuplicateQuestion    = errors.New("duplicate question id")
	ErrInvalidQuestion      = errors.New("invalid question definition")
)

// ErrorKind names a scoring failure class
type ErrorKind string

const (
	KindIncompleteAssessment ErrorKind = "incomplete_assessment"
	KindUnknownQuestion      ErrorKind = "unknown_question"
	KindInvalidResponseValue ErrorKind = "invalid_response_value"
)

// ScoringError describes why a response map was rejected
type ScoringError struct {
	Kind       ErrorKind
	QuestionID int
	Value      int
	Expected   int
	Got        int
}

func (e *ScoringError) Error() string {
	switch e.Kind {
	case KindIncompleteAssessment:
		return fmt.Sprintf("%s: expected %d responses, got %d", ErrIncompleteAssessment, e.Expected, e.Got)
	case KindUnknownQuestion:
		return fmt.Sprintf("%s: question %d", ErrUnknownQuestion, e.QuestionID)
	case KindInvalidResponseValue:
		return fmt.Sprintf("%s: question %d has value %d", ErrInvalidResponseValue, e.QuestionID, e.Value)
	}
	return string(e.Kind)
}

// Unwrap maps the kind to its sentinel so errors.Is works
func (e *ScoringError) Unwrap() error {
	switch e.Kind {
	case KindIncompleteAssessment:
		return ErrIncompleteAssessment
	case KindUnknownQuestion:
		return ErrUnknownQuestion
	case KindInvalidResponseValue:
		return ErrInvalidResponseValue
	}
	return nil
}

// KindOf returns the scoring error kind of err, or "" when err is not a scoring error
func KindOf(err error) ErrorKind {
	var se *ScoringError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
