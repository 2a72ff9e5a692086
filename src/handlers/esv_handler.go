package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/services"
	"github.com/username/fopzvit/src/utils"
)

type ESVHandler struct {
	esvService services.ESVService
}

func NewESVHandler(service services.ESVService) *ESVHandler {
	return &ESVHandler{esvService: service}
}

func (h *ESVHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.esvService.GetSettings(year)
	if err != nil {
		logger.L.Error("Error loading ESV settings", "year", year, "error", err)
		utils.SendJSONError(w, "Error retrieving ESV settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(settings); err != nil {
		logger.L.Error("Error encoding ESV settings response", "year", year, "error", err)
	}
}

func (h *ESVHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.ESVSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.esvService.UpdateSettings(&settings); err != nil {
		logger.L.Error("Error updating ESV settings", "year", settings.Year, "error", err)
		utils.SendJSONError(w, "Error updating ESV settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(settings); err != nil {
		logger.L.Error("Error encoding ESV settings response", "year", settings.Year, "error", err)
	}
}

// HandleBulkUpdateMonths applies one base and rate to every month from
// the given start month onwards, the usual way the minimum base changes
// mid-year.
func (h *ESVHandler) HandleBulkUpdateMonths(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year             int     `json:"year"`
		StartMonth       int     `json:"startMonth"`
		IncomeBase       float64 `json:"incomeBase"`
		ContributionRate float64 `json:"contributionRate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	settings, err := h.esvService.UpdateMonthsFrom(req.Year, req.StartMonth, req.IncomeBase, req.ContributionRate)
	if err != nil {
		logger.L.Error("Error bulk-updating ESV months", "year", req.Year, "startMonth", req.StartMonth, "error", err)
		utils.SendJSONError(w, "Error updating ESV settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(settings); err != nil {
		logger.L.Error("Error encoding ESV settings response", "year", req.Year, "error", err)
	}
}
