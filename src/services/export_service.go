package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/store"
)

const exportFormatVersion = "1.0"

type exportServiceImpl struct {
	payments    *store.PaymentStore
	profiles    *store.ProfileStore
	accumulated *store.AccumulatedDataStore
	configs     *store.ImportConfigStore
}

func NewExportService(
	payments *store.PaymentStore,
	profiles *store.ProfileStore,
	accumulated *store.AccumulatedDataStore,
	configs *store.ImportConfigStore,
) ExportService {
	return &exportServiceImpl{
		payments:    payments,
		profiles:    profiles,
		accumulated: accumulated,
		configs:     configs,
	}
}

// ExportAll collects every stored record into one JSON-serializable
// bundle. The aggregate is included per year so a restore does not have
// to re-run the accumulation engine.
func (s *exportServiceImpl) ExportAll() (*ExportBundle, error) {
	payments, err := s.payments.ListAll()
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Load()
	if err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			return nil, err
		}
		profile = nil
	}

	configs, err := s.configs.List()
	if err != nil {
		return nil, err
	}

	years := map[int]struct{}{time.Now().Year(): {}}
	for _, p := range payments {
		years[p.Date.Year()] = struct{}{}
	}

	accumulated := make(map[string]*models.AccumulatedData, len(years))
	for year := range years {
		data, err := s.accumulated.Load(year)
		if err != nil {
			return nil, err
		}
		accumulated[strconv.Itoa(year)] = data
	}

	return &ExportBundle{
		Version:         exportFormatVersion,
		ExportDate:      time.Now(),
		Payments:        payments,
		Profile:         profile,
		ImportConfigs:   configs,
		AccumulatedData: accumulated,
	}, nil
}
