package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/processors"
	"github.com/username/fopzvit/src/reports"
	"github.com/username/fopzvit/src/store"
)

type reportServiceImpl struct {
	profiles    *store.ProfileStore
	accumulated *store.AccumulatedDataStore
	esvSettings *store.ESVSettingsStore
	calcCache   *cache.Cache
}

func NewReportService(
	profiles *store.ProfileStore,
	accumulated *store.AccumulatedDataStore,
	esvSettings *store.ESVSettingsStore,
	calcCache *cache.Cache,
) ReportService {
	return &reportServiceImpl{
		profiles:    profiles,
		accumulated: accumulated,
		esvSettings: esvSettings,
		calcCache:   calcCache,
	}
}

func (s *reportServiceImpl) GetAccumulatedData(year int) (*models.AccumulatedData, error) {
	return s.accumulated.Load(year)
}

func (s *reportServiceImpl) GetQuarterSummary(year, quarter int) (*QuarterSummary, error) {
	data, err := s.accumulated.Load(year)
	if err != nil {
		return nil, err
	}

	return &QuarterSummary{
		Year:              year,
		Quarter:           quarter,
		QuarterTotals:     processors.QuarterView(data, quarter),
		CumulativeTotals:  processors.CumulativeView(data, quarter),
		WithinLimit:       processors.WithinLimit(data, quarter),
		LimitUsagePercent: processors.LimitUsagePercent(data, quarter),
	}, nil
}

// loadProfileOrDefault returns the stored profile, or the group-3
// defaults when none is configured yet. Calculations must work before
// the profile is filled in; XML generation still validates the real
// profile fields.
func (s *reportServiceImpl) loadProfileOrDefault() *models.FOPProfile {
	profile, err := s.profiles.Load()
	if err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			logger.L.Error("Error loading FOP profile, using defaults", "error", err)
		}
		return models.NewDefaultFOPProfile()
	}
	return profile
}

func (s *reportServiceImpl) GetCalculation(year, quarter int) (*models.QuarterlyCalculation, *reports.LimitCheckResult, error) {
	profile := s.loadProfileOrDefault()

	cacheKey := fmt.Sprintf(ckQuarterCalc, year, quarter)
	if cached, found := s.calcCache.Get(cacheKey); found {
		calc := cached.(models.QuarterlyCalculation)
		limitCheck := reports.CheckTaxLimits(calc, profile)
		return &calc, &limitCheck, nil
	}

	data, err := s.accumulated.Load(year)
	if err != nil {
		return nil, nil, err
	}

	calc := reports.CalculateQuarterly(data, profile, quarter)
	s.calcCache.Set(cacheKey, calc, DefaultCacheExpiration)

	limitCheck := reports.CheckTaxLimits(calc, profile)
	return &calc, &limitCheck, nil
}

// GenerateDeclaration assembles, validates and encodes the quarter's
// F0103309. Validation failures block generation and surface as a
// *ValidationError.
func (s *reportServiceImpl) GenerateDeclaration(year, quarter int) (*GeneratedDocument, error) {
	profile, err := s.profiles.Load()
	if err != nil {
		return nil, err
	}

	data, err := s.accumulated.Load(year)
	if err != nil {
		return nil, err
	}

	report := reports.BuildTaxReport(profile, data, quarter)
	if errs := reports.ValidateReport(report, profile); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	// The year's final filing carries the ESV annex alongside, so the
	// two documents cross-reference each other's filenames.
	linkedESVFilename := ""
	if quarter == 4 {
		linkedESVFilename = reports.ESVFilename(profile, year)
	}

	xml, err := reports.GenerateDeclarationXML(report, profile, linkedESVFilename, time.Now())
	if err != nil {
		return nil, err
	}

	encoded, err := reports.EncodeWindows1251(xml)
	if err != nil {
		return nil, err
	}

	filename := reports.DeclarationFilename(profile, year, quarter)
	logger.L.Info("Declaration generated", "year", year, "quarter", quarter, "filename", filename)
	return &GeneratedDocument{Filename: filename, Content: encoded}, nil
}

// GenerateESVReport assembles, validates and encodes the year's
// F0133109 annex.
func (s *reportServiceImpl) GenerateESVReport(year int) (*GeneratedDocument, error) {
	profile, err := s.profiles.Load()
	if err != nil {
		return nil, err
	}

	settings, err := s.esvSettings.Load(year)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = reports.NewDefaultESVSettings(year)
	}

	report := reports.BuildESVReport(settings)
	if errs := reports.ValidateESVReport(report, profile); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	linkedMainFilename := reports.DeclarationFilename(profile, year, 4)
	xml, err := reports.GenerateESVXML(report, profile, linkedMainFilename, time.Now())
	if err != nil {
		return nil, err
	}

	filename := reports.ESVFilename(profile, year)
	logger.L.Info("ESV report generated", "year", year, "filename", filename)
	return &GeneratedDocument{Filename: filename, Content: []byte(xml)}, nil
}

func (s *reportServiceImpl) GetDeclarationPreview(year, quarter int) (string, error) {
	profile := s.loadProfileOrDefault()

	data, err := s.accumulated.Load(year)
	if err != nil {
		return "", err
	}

	report := reports.BuildTaxReport(profile, data, quarter)
	return reports.BuildDeclarationPreview(report, profile, time.Now()), nil
}

func (s *reportServiceImpl) GetESVPreview(year int) (string, error) {
	profile := s.loadProfileOrDefault()

	settings, err := s.esvSettings.Load(year)
	if err != nil {
		return "", err
	}
	if settings == nil {
		settings = reports.NewDefaultESVSettings(year)
	}

	report := reports.BuildESVReport(settings)
	return reports.BuildESVPreview(report, profile, time.Now()), nil
}
