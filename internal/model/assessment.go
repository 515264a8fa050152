package model

import (
	"sort"
	"time"
)

// AssessmentRecord is a scored personality assessment stored per user
type AssessmentRecord struct {
	ID        string                `json:"id" bson:"_id"`
	UserID    string                `json:"userId" bson:"userId"`
	Responses []Response            `json:"responses" bson:"responses"`
	Scores    PersonalityScores     `json:"scores" bson:"scores"`
	Insights  []TraitInsight        `json:"insights" bson:"insights"`
	Context   LLMPersonalityContext `json:"context" bson:"context"`
	CreatedAt time.Time             `json:"createdAt" bson:"createdAt"`
}

// ResponsesFromMap flattens a ResponseMap into question id order
func ResponsesFromMap(m ResponseMap) []Response {
	out := make([]Response, 0, len(m))
	for id, v := range m {
		out = append(out, Response{QuestionID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}

// ResponseMap rebuilds the response map from stored responses
func (r *AssessmentRecord) ResponseMap() ResponseMap {
	m := make(ResponseMap, len(r.Responses))
	for _, resp := range r.Responses {
		m[resp.QuestionID] = resp.Value
	}
	return m
}

// SubmitAssessmentRequest is the request body for submitting questionnaire answers
type SubmitAssessmentRequest struct {
	Responses ResponseMap `json:"responses"`
}

// AssessmentResult is returned after a successful submission
type AssessmentResult struct {
	AssessmentID string                `json:"assessmentId"`
	Scores       PersonalityScores     `json:"scores"`
	Insights     []TraitInsight        `json:"insights"`
	Context      LLMPersonalityContext `json:"context"`
}

// PreviewResult is the stateless interpretation of a set of scores
type PreviewResult struct {
	Insights []TraitInsight        `json:"insights"`
	Context  LLMPersonalityContext `json:"context"`
}
