package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/parsers"
	"github.com/username/fopzvit/src/processors"
	"github.com/username/fopzvit/src/rates"
	"github.com/username/fopzvit/src/store"
)

const (
	// Cache key for per-quarter calculation results, keyed by year and quarter.
	ckQuarterCalc = "calc_%d_q%d"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type paymentServiceImpl struct {
	payments    *store.PaymentStore
	accumulator *processors.AccumulationProcessor
	ratesClient *rates.Client
	parser      parsers.StatementParser
	configs     *store.ImportConfigStore
	calcCache   *cache.Cache
}

func NewPaymentService(
	payments *store.PaymentStore,
	accumulator *processors.AccumulationProcessor,
	ratesClient *rates.Client,
	parser parsers.StatementParser,
	configs *store.ImportConfigStore,
	calcCache *cache.Cache,
) PaymentService {
	return &paymentServiceImpl{
		payments:    payments,
		accumulator: accumulator,
		ratesClient: ratesClient,
		parser:      parser,
		configs:     configs,
		calcCache:   calcCache,
	}
}

// AddPayment records one manually entered payment. Conversion to
// hryvnia happens here, once; the stored AmountUAH is what the engine
// trusts from now on.
func (s *paymentServiceImpl) AddPayment(ctx context.Context, req AddPaymentRequest) (*models.Payment, error) {
	if errs := validateAddPayment(req); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	payment := s.buildPayment(ctx, req)

	if err := s.payments.Insert(payment); err != nil {
		return nil, err
	}

	if err := s.reaccumulate(payment.Date.Year()); err != nil {
		return nil, err
	}

	logger.L.Info("Payment recorded", "id", payment.ID, "currency", payment.CurrencyCode, "amountUAH", payment.AmountUAH)
	return payment, nil
}

func validateAddPayment(req AddPaymentRequest) []string {
	var errs []string
	if req.Date.IsZero() {
		errs = append(errs, "Дата платежу є обов'язковою")
	}
	if req.Amount <= 0 {
		errs = append(errs, "Сума платежу повинна бути більшою за 0")
	}
	if strings.TrimSpace(req.Counterparty) == "" {
		errs = append(errs, "Контрагент є обов'язковим")
	}
	if req.CurrencyCode == "" {
		errs = append(errs, "Валюта є обов'язковою")
	}
	return errs
}

func (s *paymentServiceImpl) buildPayment(ctx context.Context, req AddPaymentRequest) *models.Payment {
	exchangeRate := req.ExchangeRate
	if req.CurrencyCode != models.CurrencyUAH && exchangeRate == 0 {
		exchangeRate = s.ratesClient.FetchRateValue(ctx, req.CurrencyCode, req.Date)
	}

	payment := &models.Payment{
		ID:                  uuid.NewString(),
		Date:                req.Date,
		CurrencyCode:        req.CurrencyCode,
		Amount:              req.Amount,
		AmountUAH:           rates.ConvertToUAH(req.Amount, req.CurrencyCode, exchangeRate),
		Counterparty:        req.Counterparty,
		CounterpartyAccount: req.CounterpartyAccount,
		Description:         req.Description,
	}
	if req.CurrencyCode != models.CurrencyUAH {
		payment.ExchangeRate = exchangeRate
	}
	return payment
}

func (s *paymentServiceImpl) DeletePayment(id string) error {
	payment, err := s.payments.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.payments.Delete(id); err != nil {
		return err
	}

	if err := s.reaccumulate(payment.Date.Year()); err != nil {
		return err
	}

	logger.L.Info("Payment deleted", "id", id)
	return nil
}

func (s *paymentServiceImpl) ListPayments() ([]models.Payment, error) {
	return s.payments.ListAll()
}

// ImportStatement parses an uploaded bank statement and records every
// incoming payment. Rates are fetched per payment date; a missing
// rate degrades to pass-through conversion, never a failed import.
func (s *paymentServiceImpl) ImportStatement(ctx context.Context, file io.Reader, configID string) (*ImportResult, error) {
	startTime := time.Now()
	logger.L.Info("ImportStatement START", "configID", configID)

	importConfig, err := s.configs.Get(configID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	parsed, err := s.parser.Parse(file, importConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	result := &ImportResult{Payments: []models.Payment{}}
	years := map[int]bool{}
	var toInsert []models.Payment

	for _, parsedPayment := range parsed {
		if !parsedPayment.IsIncoming {
			result.Skipped++
			continue
		}
		payment := s.buildPayment(ctx, AddPaymentRequest{
			Date:                parsedPayment.Date,
			CurrencyCode:        parsedPayment.CurrencyCode,
			Amount:              parsedPayment.Amount,
			Counterparty:        parsedPayment.Counterparty,
			CounterpartyAccount: parsedPayment.CounterpartyAccount,
			Description:         parsedPayment.Description,
		})
		toInsert = append(toInsert, *payment)
		years[payment.Date.Year()] = true
	}

	if len(toInsert) > 0 {
		if err := s.payments.InsertBatch(toInsert); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
		}
		for year := range years {
			if err := s.reaccumulate(year); err != nil {
				return nil, err
			}
		}
	}

	result.Imported = len(toInsert)
	result.Payments = toInsert
	logger.L.Info("ImportStatement END", "imported", result.Imported, "skipped", result.Skipped, "duration", time.Since(startTime))
	return result, nil
}

// reaccumulate rebuilds the year aggregate from the year's complete
// payment list and drops the year's cached calculations.
func (s *paymentServiceImpl) reaccumulate(year int) error {
	yearPayments, err := s.payments.ListByYear(year)
	if err != nil {
		return err
	}
	if _, err := s.accumulator.Accumulate(yearPayments, year); err != nil {
		return err
	}
	invalidateYearCache(s.calcCache, year)
	return nil
}

// invalidateYearCache clears the cached calculations of every quarter
// of a year. The next request triggers a full, correct recalculation.
func invalidateYearCache(calcCache *cache.Cache, year int) {
	for quarter := 1; quarter <= 4; quarter++ {
		calcCache.Delete(fmt.Sprintf(ckQuarterCalc, year, quarter))
	}
	logger.L.Debug("Invalidated calculation cache", "year", year)
}
