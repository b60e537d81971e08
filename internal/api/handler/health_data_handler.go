package handler

import (
	"encoding/json"
	"health_data_api/internal/app/service"
	"health_data_api/internal/common"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthDataHandler struct {
	healthDataService *service.HealthDataService
}

func NewHealthDataHandler(hs *service.HealthDataService) *HealthDataHandler {
	return &HealthDataHandler{healthDataService: hs}
}

func (h *HealthDataHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createHealthData)      // POST /health_data/
	r.Get("/{userID}", h.listHealthData) // GET /health_data/{user_id}
}

func (h *HealthDataHandler) createHealthData(w http.ResponseWriter, r *http.Request) {
	var req service.CreateHealthDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	record, err := h.healthDataService.CreateHealthData(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), errorDetail("Error inserting health data", err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, record)
}

func (h *HealthDataHandler) listHealthData(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	records, err := h.healthDataService.ListHealthData(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), errorDetail("Error retrieving health data", err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, records)
}
