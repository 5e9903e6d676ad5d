package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SWiseG/QuizLoop/internal/app"
	"github.com/SWiseG/QuizLoop/internal/domain"
)

// Handler wires the REST API onto the application services.
type Handler struct {
	questions   *app.QuestionService
	rounds      *app.RoundService
	leaderboard app.LeaderboardSource
	profiles    *app.ProfileService
	auth        *Authenticator
}

func NewHandler(
	questions *app.QuestionService,
	rounds *app.RoundService,
	leaderboard app.LeaderboardSource,
	profiles *app.ProfileService,
	auth *Authenticator,
) *Handler {
	return &Handler{
		questions:   questions,
		rounds:      rounds,
		leaderboard: leaderboard,
		profiles:    profiles,
		auth:        auth,
	}
}

// Register attaches all routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/leaderboard", h.handleGetLeaderboard)
	mux.HandleFunc("/leaderboard/submit", h.auth.RequireAuth(h.handleSubmitRound))
	mux.HandleFunc("/questions", h.handleListQuestions)
	mux.HandleFunc("/user/profile", h.auth.RequireAuth(h.handleGetProfile))
	mux.HandleFunc("/user/sync", h.auth.RequireAuth(h.handleSyncProfile))
}

func (h *Handler) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "alltime"
	}
	entries, err := h.leaderboard.Get(r.Context(), period)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type submitRoundRequest struct {
	Mode         string `json:"mode"`
	Score        int    `json:"score"`
	CorrectCount int    `json:"correctCount"`
}

func (h *Handler) handleSubmitRound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := SubjectFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req submitRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	round, err := h.rounds.Submit(r.Context(), userID, req.Mode, req.Score, req.CorrectCount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, round)
}

func (h *Handler) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	locale := q.Get("locale")
	if locale == "" {
		locale = "en"
	}
	limit := app.DefaultQuestionLimit
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	questions, err := h.questions.List(r.Context(), q.Get("category"), locale, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := SubjectFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	profile, err := h.profiles.GetOrCreate(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleSyncProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := SubjectFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req app.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	profile, err := h.profiles.Sync(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("internal error: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrInvalidPeriod,
		domain.ErrInvalidMode,
		domain.ErrCorrectCountOutOfRange,
		domain.ErrScoreOutOfRange,
		domain.ErrImpossibleScore,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
