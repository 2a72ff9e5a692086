package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/store"
	"github.com/username/fopzvit/src/utils"
)

type ImportConfigHandler struct {
	configs *store.ImportConfigStore
}

func NewImportConfigHandler(configs *store.ImportConfigStore) *ImportConfigHandler {
	return &ImportConfigHandler{configs: configs}
}

func (h *ImportConfigHandler) HandleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configs.List()
	if err != nil {
		logger.L.Error("Error listing import configs", "error", err)
		utils.SendJSONError(w, "Error retrieving import configurations", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(configs); err != nil {
		logger.L.Error("Error encoding import configs response", "error", err)
	}
}

func (h *ImportConfigHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	cfg, err := h.configs.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrImportConfigNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("Import configuration %s not found", id), http.StatusNotFound)
			return
		}
		logger.L.Error("Error loading import config", "configID", id, "error", err)
		utils.SendJSONError(w, "Error retrieving import configuration", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cfg); err != nil {
		logger.L.Error("Error encoding import config response", "configID", id, "error", err)
	}
}

func (h *ImportConfigHandler) HandleSaveConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.ImportConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(cfg.Name) == "" {
		utils.SendJSONError(w, "Configuration name is required", http.StatusBadRequest)
		return
	}
	if cfg.ID == models.DefaultImportConfigID {
		utils.SendJSONError(w, "The default configuration is read-only", http.StatusForbidden)
		return
	}
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	if err := h.configs.Save(&cfg); err != nil {
		logger.L.Error("Error saving import config", "configID", cfg.ID, "error", err)
		utils.SendJSONError(w, "Error saving import configuration", http.StatusInternalServerError)
		return
	}

	logger.L.Info("Import config saved", "configID", cfg.ID, "name", cfg.Name)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cfg); err != nil {
		logger.L.Error("Error encoding import config response", "configID", cfg.ID, "error", err)
	}
}

func (h *ImportConfigHandler) HandleDeleteConfig(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.configs.Delete(id); err != nil {
		if errors.Is(err, store.ErrDefaultConfigReadOnly) {
			utils.SendJSONError(w, "The default configuration cannot be deleted", http.StatusForbidden)
			return
		}
		if errors.Is(err, store.ErrImportConfigNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("Import configuration %s not found", id), http.StatusNotFound)
			return
		}
		logger.L.Error("Error deleting import config", "configID", id, "error", err)
		utils.SendJSONError(w, "Error deleting import configuration", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
