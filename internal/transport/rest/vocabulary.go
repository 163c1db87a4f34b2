package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/service/vocabulary"
)

type vocabularyService interface {
	AddWord(ctx context.Context, input vocabulary.AddWordInput) (*domain.Word, error)
	ListWords(ctx context.Context) ([]*domain.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error
	LookupWord(ctx context.Context, word string) (*domain.WordInfo, error)
}

// VocabularyHandler serves saved-word and word lookup endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type addWordRequest struct {
	Word     string     `json:"word"`
	Meaning  string     `json:"meaning"`
	Example  *string    `json:"example"`
	RecordID *uuid.UUID `json:"recordId"`
}

type wordResponse struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	Meaning   string    `json:"meaning"`
	Example   *string   `json:"example"`
	RecordID  *string   `json:"recordId"`
	CreatedAt time.Time `json:"createdAt"`
}

type wordInfoResponse struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
}

// List handles GET /api/vocabulary.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.ListWords(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordResponse, 0, len(words))
	for _, wd := range words {
		out = append(out, toWordResponse(wd))
	}
	writeJSON(w, http.StatusOK, out)
}

// Add handles POST /api/vocabulary.
func (h *VocabularyHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if !decode(w, r, &req) {
		return
	}

	wd, err := h.svc.AddWord(r.Context(), vocabulary.AddWordInput{
		Word:     req.Word,
		Meaning:  req.Meaning,
		Example:  req.Example,
		RecordID: req.RecordID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(wd))
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Lookup handles GET /api/words/{word}.
func (h *VocabularyHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word, err := url.PathUnescape(chi.URLParam(r, "word"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word")
		return
	}

	info, err := h.svc.LookupWord(r.Context(), word)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordInfoResponse{Word: info.Word, Meaning: info.Meaning, Example: info.Example})
}

func toWordResponse(wd *domain.Word) wordResponse {
	resp := wordResponse{
		ID:        wd.ID.String(),
		Word:      wd.Text,
		Meaning:   wd.Meaning,
		Example:   wd.Example,
		CreatedAt: wd.CreatedAt,
	}
	if wd.RecordID != nil {
		s := wd.RecordID.String()
		resp.RecordID = &s
	}
	return resp
}
