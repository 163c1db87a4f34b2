package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/feedback"
	"github.com/heartmarshall/linglual-backend/internal/service/writing"
)

const dateLayout = "2006-01-02"

type recordService interface {
	CreateRecord(ctx context.Context, input writing.CreateRecordInput) (*writing.RecordView, error)
	UpdateRecord(ctx context.Context, input writing.UpdateRecordInput) (*writing.RecordView, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*writing.RecordView, error)
	ListRecords(ctx context.Context) ([]*writing.RecordView, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	TopicHints(ctx context.Context, topic string) (*writing.TopicHints, error)
}

// RecordHandler serves writing record endpoints.
type RecordHandler struct {
	svc recordService
	log *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc recordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{svc: svc, log: logger.With("handler", "records")}
}

type recordRequest struct {
	Content string `json:"content"`
	Topic   string `json:"topic"`
}

type hintsRequest struct {
	Topic string `json:"topic"`
}

type recordResponse struct {
	ID             string           `json:"id"`
	Date           string           `json:"date"`
	Content        string           `json:"content"`
	Topic          string           `json:"topic"`
	Level          *string          `json:"level"`
	Summary        string           `json:"summary"`
	SearchKeywords []string         `json:"searchKeywords"`
	Feedback       feedbackResponse `json:"feedback"`
	RawFeedback    string           `json:"rawFeedback"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type feedbackResponse struct {
	Strengths    string               `json:"strengths"`
	Improvements string               `json:"improvements"`
	Corrections  []correctionResponse `json:"corrections"`
}

type correctionResponse struct {
	Original    string `json:"original"`
	Suggestion  string `json:"suggestion"`
	Explanation string `json:"explanation"`
}

type hintResponse struct {
	Expression  string `json:"expression"`
	Explanation string `json:"explanation"`
}

type hintsResponse struct {
	Topic string         `json:"topic"`
	Text  string         `json:"text"`
	Hints []hintResponse `json:"hints"`
}

// Create handles POST /api/records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if !decode(w, r, &req) {
		return
	}

	view, err := h.svc.CreateRecord(r.Context(), writing.CreateRecordInput{
		Content: req.Content,
		Topic:   req.Topic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(view))
}

// List handles GET /api/records.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListRecords(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]recordResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toRecordResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(view))
}

// Update handles PUT /api/records/{id}.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req recordRequest
	if !decode(w, r, &req) {
		return
	}

	view, err := h.svc.UpdateRecord(r.Context(), writing.UpdateRecordInput{
		ID:      id,
		Content: req.Content,
		Topic:   req.Topic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(view))
}

// Delete handles DELETE /api/records/{id}.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteRecord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Hints handles POST /api/hints.
func (h *RecordHandler) Hints(w http.ResponseWriter, r *http.Request) {
	var req hintsRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.svc.TopicHints(r.Context(), req.Topic)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := hintsResponse{Topic: res.Topic, Text: res.Text, Hints: make([]hintResponse, 0, len(res.Hints))}
	for _, hint := range res.Hints {
		out.Hints = append(out.Hints, hintResponse{Expression: hint.Expression, Explanation: hint.Explanation})
	}
	writeJSON(w, http.StatusOK, out)
}

func toRecordResponse(v *writing.RecordView) recordResponse {
	rec := v.Record
	resp := recordResponse{
		ID:             rec.ID.String(),
		Date:           rec.Date.Format(dateLayout),
		Content:        rec.Content,
		Topic:          rec.Topic,
		Summary:        rec.Summary,
		SearchKeywords: rec.SearchKeywords,
		Feedback:       toFeedbackResponse(v.Feedback),
		RawFeedback:    rec.Feedback,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
	if resp.SearchKeywords == nil {
		resp.SearchKeywords = []string{}
	}
	if rec.Level != nil {
		lvl := rec.Level.String()
		resp.Level = &lvl
	}
	return resp
}

func toFeedbackResponse(fb feedback.Feedback) feedbackResponse {
	resp := feedbackResponse{
		Strengths:    fb.Strengths,
		Improvements: fb.Improvements,
		Corrections:  make([]correctionResponse, 0, len(fb.Corrections)),
	}
	for _, c := range fb.Corrections {
		resp.Corrections = append(resp.Corrections, correctionResponse{
			Original:    c.Original,
			Suggestion:  c.Suggestion,
			Explanation: c.Explanation,
		})
	}
	return resp
}
