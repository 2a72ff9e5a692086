package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/username/fopzvit/src/models"
)

// AccumulatedDataStore persists the year-scoped aggregate as one JSON
// document per year. Save is a full replace: the accumulation engine
// always rebuilds the whole structure, so merging would only hide bugs.
type AccumulatedDataStore struct {
	db *sql.DB
}

func NewAccumulatedDataStore(db *sql.DB) *AccumulatedDataStore {
	return &AccumulatedDataStore{db: db}
}

// Load returns the stored aggregate for a year, or an all-zero
// structure when none was persisted yet. A missing year is normal,
// not an error.
func (s *AccumulatedDataStore) Load(year int) (*models.AccumulatedData, error) {
	var raw string
	err := s.db.QueryRow("SELECT data FROM accumulated_data WHERE year = ?", year).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewAccumulatedData(year), nil
		}
		return nil, fmt.Errorf("error loading accumulated data for year %d: %w", year, err)
	}

	var data models.AccumulatedData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("error unmarshalling accumulated data for year %d: %w", year, err)
	}
	return &data, nil
}

// Save overwrites the aggregate for data.Year.
func (s *AccumulatedDataStore) Save(data *models.AccumulatedData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshalling accumulated data for year %d: %w", data.Year, err)
	}
	_, err = s.db.Exec(`INSERT INTO accumulated_data (year, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(year) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		data.Year, string(raw))
	if err != nil {
		return fmt.Errorf("error saving accumulated data for year %d: %w", data.Year, err)
	}
	return nil
}
