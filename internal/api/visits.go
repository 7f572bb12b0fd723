package api

import (
	"log/slog"
	"net/http"
	"time"
)

// visitCounterPath keys the single site-wide counter.
const visitCounterPath = "/"

type visitResponse struct {
	VisitCount int64  `json:"visitCount"`
	Timestamp  string `json:"timestamp"`
}

type visitErrorResponse struct {
	VisitCount int64  `json:"visitCount"`
	Error      string `json:"error"`
}

// HandleVisits handles GET|POST /api/visits: one atomic add-and-read of the
// site counter. The counter is never decremented or reset here.
func (h *Handler) HandleVisits(w http.ResponseWriter, r *http.Request) {
	count, err := h.repo.IncrementVisit(r.Context(), visitCounterPath)
	if err != nil {
		slog.Error("Failed to update visit count", "error", err)
		JSON(w, http.StatusInternalServerError, visitErrorResponse{
			VisitCount: 0,
			Error:      "Failed to update visit count",
		})
		return
	}

	JSON(w, http.StatusOK, visitResponse{
		VisitCount: count,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}
