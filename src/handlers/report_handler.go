package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/services"
	"github.com/username/fopzvit/src/store"
	"github.com/username/fopzvit/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
	exportService services.ExportService
}

func NewReportHandler(reportService services.ReportService, exportService services.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// yearParam reads the year query parameter, defaulting to the current
// year when absent.
func yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

func quarterParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("quarter")
	if raw == "" {
		return utils.QuarterOfDate(time.Now()), nil
	}
	quarter, err := strconv.Atoi(raw)
	if err != nil || quarter < 1 || quarter > 4 {
		return 0, fmt.Errorf("invalid quarter %q", raw)
	}
	return quarter, nil
}

func periodParams(r *http.Request) (year, quarter int, err error) {
	if year, err = yearParam(r); err != nil {
		return 0, 0, err
	}
	if quarter, err = quarterParam(r); err != nil {
		return 0, 0, err
	}
	return year, quarter, nil
}

func (h *ReportHandler) HandleGetAccumulatedData(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.reportService.GetAccumulatedData(year)
	if err != nil {
		logger.L.Error("Error loading accumulated data", "year", year, "error", err)
		utils.SendJSONError(w, "Error retrieving accumulated data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L.Error("Error encoding accumulated data response", "year", year, "error", err)
	}
}

func (h *ReportHandler) HandleGetQuarterSummary(w http.ResponseWriter, r *http.Request) {
	year, quarter, err := periodParams(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.reportService.GetQuarterSummary(year, quarter)
	if err != nil {
		logger.L.Error("Error building quarter summary", "year", year, "quarter", quarter, "error", err)
		utils.SendJSONError(w, "Error retrieving quarter summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.L.Error("Error encoding quarter summary response", "year", year, "quarter", quarter, "error", err)
	}
}

func (h *ReportHandler) HandleGetCalculation(w http.ResponseWriter, r *http.Request) {
	year, quarter, err := periodParams(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	calc, limitCheck, err := h.reportService.GetCalculation(year, quarter)
	if err != nil {
		logger.L.Error("Error calculating quarterly taxes", "year", year, "quarter", quarter, "error", err)
		utils.SendJSONError(w, "Error calculating quarterly taxes", http.StatusInternalServerError)
		return
	}

	response := struct {
		Calculation interface{} `json:"calculation"`
		LimitCheck  interface{} `json:"limitCheck"`
	}{Calculation: calc, LimitCheck: limitCheck}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.L.Error("Error encoding calculation response", "year", year, "quarter", quarter, "error", err)
	}
}

// HandleDownloadDeclaration streams the quarter's declaration XML in
// windows-1251, the encoding the tax office's software expects.
func (h *ReportHandler) HandleDownloadDeclaration(w http.ResponseWriter, r *http.Request) {
	year, quarter, err := periodParams(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.reportService.GenerateDeclaration(year, quarter)
	if err != nil {
		h.sendGenerationError(w, "declaration", year, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=windows-1251")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	if _, err := w.Write(doc.Content); err != nil {
		logger.L.Error("Error writing declaration response", "filename", doc.Filename, "error", err)
	}
}

func (h *ReportHandler) HandleDownloadESVReport(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.reportService.GenerateESVReport(year)
	if err != nil {
		h.sendGenerationError(w, "ESV report", year, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	if _, err := w.Write(doc.Content); err != nil {
		logger.L.Error("Error writing ESV report response", "filename", doc.Filename, "error", err)
	}
}

func (h *ReportHandler) HandleDeclarationPreview(w http.ResponseWriter, r *http.Request) {
	year, quarter, err := periodParams(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	html, err := h.reportService.GetDeclarationPreview(year, quarter)
	if err != nil {
		logger.L.Error("Error building declaration preview", "year", year, "quarter", quarter, "error", err)
		utils.SendJSONError(w, "Error building declaration preview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (h *ReportHandler) HandleESVPreview(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	html, err := h.reportService.GetESVPreview(year)
	if err != nil {
		logger.L.Error("Error building ESV preview", "year", year, "error", err)
		utils.SendJSONError(w, "Error building ESV preview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (h *ReportHandler) HandleExportAll(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.exportService.ExportAll()
	if err != nil {
		logger.L.Error("Error building export bundle", "error", err)
		utils.SendJSONError(w, "Error building export bundle", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("fopzvit-export-%s.json", bundle.ExportDate.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := json.NewEncoder(w).Encode(bundle); err != nil {
		logger.L.Error("Error encoding export bundle", "error", err)
	}
}

func (h *ReportHandler) sendGenerationError(w http.ResponseWriter, what string, year int, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.SendJSONValidationErrors(w, validationErr.Errors)
	case errors.Is(err, store.ErrProfileNotFound):
		utils.SendJSONError(w, "FOP profile must be filled in before generating reports", http.StatusPreconditionFailed)
	default:
		logger.L.Error("Error generating "+what, "year", year, "error", err)
		utils.SendJSONError(w, "Error generating "+what, http.StatusInternalServerError)
	}
}
