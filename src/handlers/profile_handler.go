package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/reports"
	"github.com/username/fopzvit/src/services"
	"github.com/username/fopzvit/src/store"
	"github.com/username/fopzvit/src/utils"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// HandleGetProfile returns the stored profile, or the group-3 defaults
// when nothing has been saved yet. The completeness flag tells the
// client whether declarations can be generated.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Load()
	if err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			logger.L.Error("Error loading FOP profile", "error", err)
			utils.SendJSONError(w, "Error retrieving profile", http.StatusInternalServerError)
			return
		}
		profile = models.NewDefaultFOPProfile()
	}

	response := struct {
		Profile  *models.FOPProfile `json:"profile"`
		Complete bool               `json:"complete"`
	}{Profile: profile, Complete: reports.IsProfileComplete(profile)}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.L.Error("Error encoding profile response", "error", err)
	}
}

func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.FOPProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if errs := reports.ValidateProfile(&profile); len(errs) > 0 {
		utils.SendJSONValidationErrors(w, errs)
		return
	}

	if err := h.profileService.Save(&profile); err != nil {
		logger.L.Error("Error saving FOP profile", "error", err)
		utils.SendJSONError(w, "Error saving profile", http.StatusInternalServerError)
		return
	}

	logger.L.Info("FOP profile updated", "tin", profile.TIN)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		logger.L.Error("Error encoding profile response", "error", err)
	}
}
