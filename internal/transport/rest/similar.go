package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/service/similar"
)

type similarService interface {
	Search(ctx context.Context, recordID uuid.UUID) (*similar.SearchResult, error)
	List(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error)
	Save(ctx context.Context, input similar.SaveInput) (*domain.SimilarExpression, error)
	Clear(ctx context.Context, recordID uuid.UUID) (int64, error)
}

// SimilarHandler serves similar-expression endpoints nested under a record.
type SimilarHandler struct {
	svc similarService
	log *slog.Logger
}

// NewSimilarHandler creates a SimilarHandler.
func NewSimilarHandler(svc similarService, logger *slog.Logger) *SimilarHandler {
	return &SimilarHandler{svc: svc, log: logger.With("handler", "similar")}
}

type saveExpressionRequest struct {
	OriginalText    string `json:"originalText"`
	AlternativeText string `json:"alternativeText"`
	Explanation     string `json:"explanation"`
}

type expressionResponse struct {
	ID              string    `json:"id"`
	RecordID        string    `json:"recordId"`
	OriginalText    string    `json:"originalText"`
	AlternativeText string    `json:"alternativeText"`
	Explanation     string    `json:"explanation"`
	CreatedAt       time.Time `json:"createdAt"`
}

type sourceResponse struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
}

type searchResponse struct {
	Query       string               `json:"query"`
	Sources     []sourceResponse     `json:"sources"`
	Text        string               `json:"text"`
	Expressions []expressionResponse `json:"expressions"`
}

// List handles GET /api/records/{id}/similar.
func (h *SimilarHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpressionResponses(items))
}

// Search handles POST /api/records/{id}/similar.
func (h *SimilarHandler) Search(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Search(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := searchResponse{
		Query:       res.Query,
		Sources:     make([]sourceResponse, 0, len(res.Sources)),
		Text:        res.Text,
		Expressions: toExpressionResponses(res.Expressions),
	}
	for _, s := range res.Sources {
		out.Sources = append(out.Sources, sourceResponse{Title: s.Title, Content: s.Content, URL: s.URL, Score: s.Score})
	}
	writeJSON(w, http.StatusOK, out)
}

// Save handles POST /api/records/{id}/similar/save.
func (h *SimilarHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req saveExpressionRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.svc.Save(r.Context(), similar.SaveInput{
		RecordID:        id,
		OriginalText:    req.OriginalText,
		AlternativeText: req.AlternativeText,
		Explanation:     req.Explanation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpressionResponse(*e))
}

// Clear handles DELETE /api/records/{id}/similar.
func (h *SimilarHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := h.svc.Clear(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

func toExpressionResponses(items []domain.SimilarExpression) []expressionResponse {
	out := make([]expressionResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toExpressionResponse(e))
	}
	return out
}

func toExpressionResponse(e domain.SimilarExpression) expressionResponse {
	return expressionResponse{
		ID:              e.ID.String(),
		RecordID:        e.RecordID.String(),
		OriginalText:    e.OriginalText,
		AlternativeText: e.AlternativeText,
		Explanation:     e.Explanation,
		CreatedAt:       e.CreatedAt,
	}
}
