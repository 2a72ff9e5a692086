package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/username/fopzvit/src/models"
)

var ErrProfileNotFound = errors.New("FOP profile not configured")

// ProfileStore persists the single taxpayer profile as a JSON
// document. The tool is single-tenant, so there is exactly one row.
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Load() (*models.FOPProfile, error) {
	var raw string
	err := s.db.QueryRow("SELECT data FROM fop_profile WHERE id = 1").Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error loading FOP profile: %w", err)
	}

	var profile models.FOPProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("error unmarshalling FOP profile: %w", err)
	}
	return &profile, nil
}

func (s *ProfileStore) Save(profile *models.FOPProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error marshalling FOP profile: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO fop_profile (id, data, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		string(raw))
	if err != nil {
		return fmt.Errorf("error saving FOP profile: %w", err)
	}
	return nil
}
