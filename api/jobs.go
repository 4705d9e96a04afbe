package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/dev-devfero/talaash/internal/listing"
)

type JobsHandler struct {
	svc *listing.Service
}

func NewJobsHandler(svc *listing.Service) *JobsHandler {
	return &JobsHandler{svc: svc}
}

type createJobResponse struct {
	Message string `json:"message"`
	Job     any    `json:"job"`
}

// CreateJob handles POST /api/v1/job/create-job. The caller's identity comes
// from the verified token claims; a createdBy field in the body is ignored.
func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var in listing.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var identity *listing.Identity
	if id, ok := r.Context().Value(CtxUserID).(string); ok && id != "" {
		identity = &listing.Identity{UserID: id}
		if email, ok := r.Context().Value(CtxUserEmail).(string); ok {
			identity.Email = email
		}
	}

	posting, err := h.svc.Submit(r.Context(), in, identity)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	writeJSON(w, createJobResponse{Message: "Job posted successfully", Job: posting}, http.StatusCreated)
}

func (h *JobsHandler) writeSubmitError(w http.ResponseWriter, err error) {
	var verr *listing.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := map[string]any{"error": verr.Error(), "code": verr.Code}
		if verr.Field != "" {
			resp["field"] = verr.Field
		}
		if verr.Max != "" {
			resp["max"] = verr.Max
		}
		writeJSON(w, resp, http.StatusBadRequest)
	case errors.Is(err, listing.ErrUnauthenticated):
		writeError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, listing.ErrStoreUnavailable):
		logger.Error("posting store unavailable", slog.Any("err", err))
		writeError(w, "store unavailable, retry later", http.StatusServiceUnavailable)
	default:
		logger.Error("create job failed", slog.Any("err", err))
		writeError(w, "internal error", http.StatusInternalServerError)
	}
}

// GetJobs handles GET /api/v1/job/get-job and returns every posting, newest
// first, wrapped as {"jobs": [...]}.
func (h *JobsHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.List(r.Context())
	if err != nil {
		logger.Error("list jobs failed", slog.Any("err", err))
		writeError(w, "store unavailable, retry later", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]any{"jobs": jobs}, http.StatusOK)
}

// MaxDeadline handles GET /api/v1/job/max-deadline. Clients pre-validate
// deadlines against this value instead of re-deriving the rule from the
// listing payload.
func (h *JobsHandler) MaxDeadline(w http.ResponseWriter, r *http.Request) {
	max, err := h.svc.MaxDeadline(r.Context())
	if err != nil {
		logger.Error("max deadline failed", slog.Any("err", err))
		writeError(w, "store unavailable, retry later", http.StatusServiceUnavailable)
		return
	}

	if max == nil {
		writeJSON(w, map[string]any{"maxDeadline": nil}, http.StatusOK)
		return
	}

	writeJSON(w, map[string]any{"maxDeadline": max.Format(listing.DateLayout)}, http.StatusOK)
}
