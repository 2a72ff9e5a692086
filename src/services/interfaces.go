package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/reports"
)

var (
	ErrImportFailed = errors.New("statement import failed")
	ErrNoESVData    = errors.New("no ESV settings configured for year")
)

// ValidationError carries the collected validation failures of one
// blocked action. It blocks only that action; callers present the
// list and let the user correct the input.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// AddPaymentRequest is the manual-entry payload. ExchangeRate is
// optional: when absent and the currency is foreign, the NBU rate for
// the payment date is fetched.
type AddPaymentRequest struct {
	Date                time.Time `json:"date"`
	CurrencyCode        string    `json:"currencyCode"`
	Amount              float64   `json:"amount"`
	Counterparty        string    `json:"counterparty"`
	CounterpartyAccount string    `json:"counterpartyAccount"`
	Description         string    `json:"description"`
	ExchangeRate        float64   `json:"exchangeRate"`
}

// ImportResult summarizes one statement import.
type ImportResult struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Payments []models.Payment `json:"payments"`
}

// QuarterSummary is the on-demand projection served to the UI for a
// selected quarter.
type QuarterSummary struct {
	Year              int                 `json:"year"`
	Quarter           int                 `json:"quarter"`
	QuarterTotals     models.PeriodTotals `json:"quarterTotals"`
	CumulativeTotals  models.PeriodTotals `json:"cumulativeTotals"`
	WithinLimit       bool                `json:"withinLimit"`
	LimitUsagePercent int                 `json:"limitUsagePercent"`
}

// PaymentService owns the payment lifecycle. Every mutation re-runs
// the accumulation engine for the affected year(s).
type PaymentService interface {
	AddPayment(ctx context.Context, req AddPaymentRequest) (*models.Payment, error)
	DeletePayment(id string) error
	ListPayments() ([]models.Payment, error)
	ImportStatement(ctx context.Context, file io.Reader, configID string) (*ImportResult, error)
}

// GeneratedDocument is an encoded declaration ready for download.
type GeneratedDocument struct {
	Filename string
	Content  []byte
}

// ReportService derives calculations and encodes declarations.
type ReportService interface {
	GetAccumulatedData(year int) (*models.AccumulatedData, error)
	GetQuarterSummary(year, quarter int) (*QuarterSummary, error)
	GetCalculation(year, quarter int) (*models.QuarterlyCalculation, *reports.LimitCheckResult, error)
	GenerateDeclaration(year, quarter int) (*GeneratedDocument, error)
	GenerateESVReport(year int) (*GeneratedDocument, error)
	GetDeclarationPreview(year, quarter int) (string, error)
	GetESVPreview(year int) (string, error)
}

// ProfileService persists the taxpayer profile. Saving drops every
// cached calculation: the profile's rates and yearly limit feed the
// quarterly figures.
type ProfileService interface {
	Load() (*models.FOPProfile, error)
	Save(profile *models.FOPProfile) error
}

// ESVService manages the monthly contribution schedule.
type ESVService interface {
	GetSettings(year int) (*models.ESVSettings, error)
	UpdateSettings(settings *models.ESVSettings) error
	UpdateMonthsFrom(year, startMonth int, incomeBase, contributionRate float64) (*models.ESVSettings, error)
}

// ExportService produces the full-data backup document.
type ExportService interface {
	ExportAll() (*ExportBundle, error)
}

// ExportBundle is everything the tool knows, in one restorable JSON
// document.
type ExportBundle struct {
	Version         string                  `json:"version"`
	ExportDate      time.Time               `json:"exportDate"`
	Payments        []models.Payment        `json:"payments"`
	Profile         *models.FOPProfile      `json:"profile"`
	ImportConfigs   []models.ImportConfig   `json:"importConfigs"`
	AccumulatedData map[string]*models.AccumulatedData `json:"accumulatedData"`
}
