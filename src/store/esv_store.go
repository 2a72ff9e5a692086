package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/username/fopzvit/src/models"
)

// ESVSettingsStore persists the per-year monthly contribution
// schedule as one JSON document per year.
type ESVSettingsStore struct {
	db *sql.DB
}

func NewESVSettingsStore(db *sql.DB) *ESVSettingsStore {
	return &ESVSettingsStore{db: db}
}

// Load returns the schedule for a year, or nil when none is stored.
func (s *ESVSettingsStore) Load(year int) (*models.ESVSettings, error) {
	var raw string
	err := s.db.QueryRow("SELECT data FROM esv_settings WHERE year = ?", year).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading ESV settings for year %d: %w", year, err)
	}

	var settings models.ESVSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, fmt.Errorf("error unmarshalling ESV settings for year %d: %w", year, err)
	}
	return &settings, nil
}

func (s *ESVSettingsStore) Save(settings *models.ESVSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshalling ESV settings for year %d: %w", settings.Year, err)
	}
	_, err = s.db.Exec(`INSERT INTO esv_settings (year, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(year) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		settings.Year, string(raw))
	if err != nil {
		return fmt.Errorf("error saving ESV settings for year %d: %w", settings.Year, err)
	}
	return nil
}
