package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/username/fopzvit/src/config"
	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/parsers"
	"github.com/username/fopzvit/src/security/validation"
	"github.com/username/fopzvit/src/services"
	"github.com/username/fopzvit/src/store"
	"github.com/username/fopzvit/src/utils"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(service services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: service,
	}
}

func (h *PaymentHandler) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPayments()
	if err != nil {
		logger.L.Error("Error listing payments", "error", err)
		utils.SendJSONError(w, "Error retrieving payments", http.StatusInternalServerError)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payments); err != nil {
		logger.L.Error("Error encoding payments response", "error", err)
	}
}

func (h *PaymentHandler) HandleAddPayment(w http.ResponseWriter, r *http.Request) {
	var req services.AddPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentService.AddPayment(r.Context(), req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			utils.SendJSONValidationErrors(w, validationErr.Errors)
			return
		}
		logger.L.Error("Error adding payment", "error", err)
		utils.SendJSONError(w, "Error adding payment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(payment); err != nil {
		logger.L.Error("Error encoding payment response", "paymentID", payment.ID, "error", err)
	}
}

func (h *PaymentHandler) HandleDeletePayment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.SendJSONError(w, "Payment ID is required", http.StatusBadRequest)
		return
	}

	if err := h.paymentService.DeletePayment(id); err != nil {
		if errors.Is(err, store.ErrPaymentNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("Payment %s not found", id), http.StatusNotFound)
			return
		}
		logger.L.Error("Error deleting payment", "paymentID", id, "error", err)
		utils.SendJSONError(w, "Error deleting payment", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleImportStatement receives a bank statement as multipart form
// data and runs it through the configured column mapping.
func (h *PaymentHandler) HandleImportStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file header reports size too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		logger.L.Warn("Invalid client-declared file type", "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidateFileContentByMagicBytes(file); err != nil {
		logger.L.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	configID := r.FormValue("configId")
	if configID == "" {
		configID = models.DefaultImportConfigID
	}

	logger.L.Info("Processing statement import", "filename", fileHeader.Filename, "configID", configID)
	result, err := h.paymentService.ImportStatement(r.Context(), file, configID)
	if err != nil {
		if errors.Is(err, parsers.ErrParsingFailed) {
			utils.SendJSONError(w, fmt.Sprintf("Error parsing statement file: %v", err), http.StatusBadRequest)
			return
		}
		if errors.Is(err, store.ErrImportConfigNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("Import configuration %s not found", configID), http.StatusNotFound)
			return
		}
		logger.L.Error("Internal error processing statement import", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, "An internal error occurred while processing the file. Please try again later.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding import result", "error", err)
	}
}
