package services

import (
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/reports"
	"github.com/username/fopzvit/src/store"
)

type esvServiceImpl struct {
	esvSettings *store.ESVSettingsStore
	accumulated *store.AccumulatedDataStore
	calcCache   *cache.Cache
}

func NewESVService(
	esvSettings *store.ESVSettingsStore,
	accumulated *store.AccumulatedDataStore,
	calcCache *cache.Cache,
) ESVService {
	return &esvServiceImpl{
		esvSettings: esvSettings,
		accumulated: accumulated,
		calcCache:   calcCache,
	}
}

func (s *esvServiceImpl) GetSettings(year int) (*models.ESVSettings, error) {
	settings, err := s.esvSettings.Load(year)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		// First access for the year seeds the minimum-base schedule so
		// the caller always gets 12 editable months back.
		settings = reports.NewDefaultESVSettings(year)
		if err := s.esvSettings.Save(settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

func (s *esvServiceImpl) UpdateSettings(settings *models.ESVSettings) error {
	if len(settings.MonthlySettings) != 12 {
		return fmt.Errorf("%w: expected 12 months, got %d", ErrNoESVData, len(settings.MonthlySettings))
	}

	if err := s.esvSettings.Save(settings); err != nil {
		return err
	}

	// The quarterly contribution rollup feeds the declaration's paid
	// figures, so the year's aggregate is refreshed on every change.
	if err := s.syncContributions(settings); err != nil {
		return err
	}

	invalidateYearCache(s.calcCache, settings.Year)
	logger.L.Info("ESV settings updated", "year", settings.Year)
	return nil
}

func (s *esvServiceImpl) UpdateMonthsFrom(year, startMonth int, incomeBase, contributionRate float64) (*models.ESVSettings, error) {
	if startMonth < 1 || startMonth > 12 {
		return nil, fmt.Errorf("invalid start month %d", startMonth)
	}

	settings, err := s.GetSettings(year)
	if err != nil {
		return nil, err
	}

	for i := startMonth - 1; i < 12; i++ {
		settings.MonthlySettings[i].IncomeBase = incomeBase
		settings.MonthlySettings[i].ContributionRate = contributionRate
	}

	if err := s.UpdateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *esvServiceImpl) syncContributions(settings *models.ESVSettings) error {
	data, err := s.accumulated.Load(settings.Year)
	if err != nil {
		return err
	}
	data.Taxes.SocialContributions = reports.QuarterlyContributions(settings)
	return s.accumulated.Save(data)
}
