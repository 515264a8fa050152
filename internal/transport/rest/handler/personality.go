package handler

import (
	"bondhu/internal/model"
	"bondhu/internal/personality"
	"bondhu/internal/service"
	"bondhu/internal/transport/rest/middleware"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

// PersonalityHandler handles personality assessment endpoints
type PersonalityHandler struct {
	personalitySvc *service.PersonalityService
}

// NewPersonalityHandler creates a new personality handler
func NewPersonalityHandler(personalitySvc *service.PersonalityService) *PersonalityHandler {
	return &PersonalityHandler{personalitySvc: personalitySvc}
}

// Questions handles GET /v1/personality/questions
func (h *PersonalityHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.personalitySvc.Questions(),
		"scale": map[string]int{
			"min": model.MinResponse,
			"max": model.MaxResponse,
		},
	})
}

// Preview handles POST /v1/personality/preview
func (h *PersonalityHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var scores model.PersonalityScores
	if err := json.NewDecoder(r.Body).Decode(&scores); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.personalitySvc.Preview(scores)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Submit handles POST /v1/personality/assessments
func (h *PersonalityHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.personalitySvc.SubmitAssessment(r.Context(), userID, req.Responses)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Profile handles GET /v1/personality/profile
func (h *PersonalityHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.personalitySvc.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Context handles GET /v1/personality/context
func (h *PersonalityHandler) Context(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	llmCtx, err := h.personalitySvc.GetContext(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, llmCtx)
}

// History handles GET /v1/personality/history
func (h *PersonalityHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.personalitySvc.History(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*model.AssessmentRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": records})
}

// writeServiceError maps service and scoring errors to user-facing responses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, personality.ErrIncompleteAssessment):
		writeError(w, http.StatusBadRequest, "please answer all questions")
	case personality.KindOf(err) != "":
		writeError(w, http.StatusBadRequest, "invalid assessment, please retry")
	case errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "personality assessment not completed")
	default:
		log.Printf("[PersonalityHandler] Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
