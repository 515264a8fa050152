package service

import (
	"bondhu/internal/cache"
	"bondhu/internal/metrics"
	"bondhu/internal/model"
	"bondhu/internal/personality"
	"bondhu/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	ErrProfileNotFound = errors.New("no personality profile for user")
	ErrInvalidScores   = errors.New("scores must be between 0 and 100")
)

// PersonalityService scores assessments and serves the resulting profile and LLM context
type PersonalityService struct {
	bank         *personality.QuestionBank
	repo         repository.AssessmentRepo
	contextCache cache.ContextCache
	metrics      *metrics.Collector
	broadcaster  Broadcaster
	now          func() time.Time
}

// NewPersonalityService creates a new personality service backed by the default question bank
func NewPersonalityService(repo repository.AssessmentRepo, contextCache cache.ContextCache, m *metrics.Collector) *PersonalityService {
	if m == nil {
		m = metrics.NewCollector()
	}
	return &PersonalityService{
		bank:         personality.DefaultBank(),
		repo:         repo,
		contextCache: contextCache,
		metrics:      m,
		now:          time.Now,
	}
}

// SetBroadcaster sets the broadcaster for profile push notifications
func (s *PersonalityService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetQuestionBank swaps the question bank used for scoring
func (s *PersonalityService) SetQuestionBank(bank *personality.QuestionBank) {
	s.bank = bank
}

// Questions returns the questionnaire in presentation order
func (s *PersonalityService) Questions() []model.Question {
	return s.bank.Questions()
}

// SubmitAssessment scores a complete response map and stores the resulting profile
func (s *PersonalityService) SubmitAssessment(ctx context.Context, userID string, responses model.ResponseMap) (*model.AssessmentResult, error) {
	scores, err := s.bank.CalculateScores(responses)
	if err != nil {
		s.metrics.ScoringFailures.WithLabelValues(string(personality.KindOf(err))).Inc()
		log.Printf("[PersonalityService] Rejected assessment for user %s: %v", userID, err)
		return nil, err
	}
	s.metrics.AssessmentsScored.Inc()

	insights := personality.GenerateTraitInsights(scores)
	llmCtx := personality.GenerateLLMContext(scores)

	record := &model.AssessmentRecord{
		UserID:    userID,
		Responses: model.ResponsesFromMap(responses),
		Scores:    scores,
		Insights:  insights,
		Context:   llmCtx,
		CreatedAt: s.now().UTC(),
	}
	id, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("store assessment for user %s: %w", userID, err)
	}

	if err := s.contextCache.Set(ctx, userID, &llmCtx); err != nil {
		log.Printf("[PersonalityService] Failed to cache context for user %s: %v", userID, err)
	}

	result := &model.AssessmentResult{
		AssessmentID: id,
		Scores:       scores,
		Insights:     insights,
		Context:      llmCtx,
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, MsgProfileUpdated, map[string]interface{}{
			"assessmentId": id,
			"scores":       scores,
		})
	}

	log.Printf("[PersonalityService] Scored assessment %s for user %s: %+v", id, userID, scores)
	return result, nil
}

// GetProfile returns the latest stored assessment for a user
func (s *PersonalityService) GetProfile(ctx context.Context, userID string) (*model.AssessmentRecord, error) {
	record, err := s.repo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrProfileNotFound
	}
	return record, nil
}

// GetContext returns the LLM context for a user, regenerating it from stored scores on a cache miss
func (s *PersonalityService) GetContext(ctx context.Context, userID string) (*model.LLMPersonalityContext, error) {
	cached, err := s.contextCache.Get(ctx, userID)
	if err != nil {
		log.Printf("[PersonalityService] Context cache read failed for user %s: %v", userID, err)
	}
	if cached != nil {
		s.metrics.ContextCache.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	}
	s.metrics.ContextCache.WithLabelValues(metrics.CacheMiss).Inc()

	record, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	llmCtx := personality.GenerateLLMContext(record.Scores)
	if err := s.contextCache.Set(ctx, userID, &llmCtx); err != nil {
		log.Printf("[PersonalityService] Failed to cache context for user %s: %v", userID, err)
	}
	return &llmCtx, nil
}

// History lists a user's assessments, newest first
func (s *PersonalityService) History(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error) {
	return s.repo.ListByUserID(ctx, userID, limit)
}

// Preview interprets scores without storing anything
func (s *PersonalityService) Preview(scores model.PersonalityScores) (*model.PreviewResult, error) {
	if !scores.InRange() {
		return nil, ErrInvalidScores
	}
	return &model.PreviewResult{
		Insights: personality.GenerateTraitInsights(scores),
		Context:  personality.GenerateLLMContext(scores),
	}, nil
}
