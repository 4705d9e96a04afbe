package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/dev-devfero/talaash/pkg/models"
	"github.com/dev-devfero/talaash/pkg/repository"
	"github.com/google/uuid"
)

type CVHandler struct {
	cvRepo   repository.CVRepo
	maxBytes int64
}

func NewCVHandler(cr repository.CVRepo, maxBytes int64) *CVHandler {
	if maxBytes <= 0 {
		maxBytes = 20 << 20
	}
	return &CVHandler{cvRepo: cr, maxBytes: maxBytes}
}

type saveCVResponse struct {
	Message string           `json:"message"`
	CV      *models.CVRecord `json:"cv"`
}

// SaveCV handles POST /api/v1/cv. The résumé fields are stored as-is; the
// only requirement is a non-empty userId.
func (h *CVHandler) SaveCV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	var rec models.CVRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if rec.UserID == "" {
		writeError(w, "userId is required", http.StatusBadRequest)
		return
	}

	rec.ID = uuid.NewString()
	rec.Created = 0 // assigned by the store

	if err := h.cvRepo.CreateCV(r.Context(), &rec); err != nil {
		logger.Error("save cv failed", slog.Any("err", err))
		writeError(w, "Failed to save CV", http.StatusInternalServerError)
		return
	}

	writeJSON(w, saveCVResponse{Message: "CV saved successfully", CV: &rec}, http.StatusCreated)
}

// LatestCV handles GET /api/v1/cv/latest?userId=<id> and returns the most
// recently created record for that user.
func (h *CVHandler) LatestCV(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, "userId is required", http.StatusBadRequest)
		return
	}

	rec, err := h.cvRepo.LatestByUser(r.Context(), userID)
	if err != nil {
		logger.Error("fetch latest cv failed", slog.Any("err", err))
		writeError(w, "Failed to fetch latest CV", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		writeError(w, "No CV found for this user", http.StatusNotFound)
		return
	}

	writeJSON(w, rec, http.StatusOK)
}
