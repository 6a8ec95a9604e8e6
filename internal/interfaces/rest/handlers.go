package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"newsdigest/internal/application"
	"newsdigest/internal/domain/entity"
)

// SummaryProvider is what the handlers need from the application layer.
type SummaryProvider interface {
	Summaries(ctx context.Context) ([]*entity.SummaryRecord, error)
}

type Handlers struct {
	service SummaryProvider
}

func NewHandlers(service SummaryProvider) *Handlers {
	return &Handlers{service: service}
}

func (h *Handlers) Summaries(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Summaries(r.Context())
	if err != nil {
		if errors.Is(err, application.ErrNoArticles) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "No articles found."})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error."})
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON sends a JSON response with the proper Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
