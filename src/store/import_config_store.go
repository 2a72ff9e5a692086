package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/username/fopzvit/src/models"
)

var (
	ErrImportConfigNotFound  = errors.New("import config not found")
	ErrDefaultConfigReadOnly = errors.New("the default import config cannot be deleted")
)

// ImportConfigStore persists spreadsheet layout configs.
type ImportConfigStore struct {
	db *sql.DB
}

func NewImportConfigStore(db *sql.DB) *ImportConfigStore {
	return &ImportConfigStore{db: db}
}

// List returns all configs, seeding the built-in default on first use.
func (s *ImportConfigStore) List() ([]models.ImportConfig, error) {
	rows, err := s.db.Query("SELECT data FROM import_configs ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("error querying import configs: %w", err)
	}
	defer rows.Close()

	configs := []models.ImportConfig{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("error scanning import config: %w", err)
		}
		var cfg models.ImportConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return nil, fmt.Errorf("error unmarshalling import config: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over import configs: %w", err)
	}

	if len(configs) == 0 {
		defaultCfg := models.NewDefaultImportConfig()
		if err := s.Save(defaultCfg); err != nil {
			return nil, err
		}
		configs = append(configs, *defaultCfg)
	}
	return configs, nil
}

// Get returns one config by ID, falling back to the seeded default
// list when the table is still empty.
func (s *ImportConfigStore) Get(id string) (*models.ImportConfig, error) {
	var raw string
	err := s.db.QueryRow("SELECT data FROM import_configs WHERE id = ?", id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if id == models.DefaultImportConfigID {
				defaultCfg := models.NewDefaultImportConfig()
				if err := s.Save(defaultCfg); err != nil {
					return nil, err
				}
				return defaultCfg, nil
			}
			return nil, ErrImportConfigNotFound
		}
		return nil, fmt.Errorf("error loading import config %s: %w", id, err)
	}

	var cfg models.ImportConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling import config %s: %w", id, err)
	}
	return &cfg, nil
}

func (s *ImportConfigStore) Save(cfg *models.ImportConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshalling import config %s: %w", cfg.ID, err)
	}
	_, err = s.db.Exec(`INSERT INTO import_configs (id, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		cfg.ID, string(raw))
	if err != nil {
		return fmt.Errorf("error saving import config %s: %w", cfg.ID, err)
	}
	return nil
}

func (s *ImportConfigStore) Delete(id string) error {
	if id == models.DefaultImportConfigID {
		return ErrDefaultConfigReadOnly
	}
	res, err := s.db.Exec("DELETE FROM import_configs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("error deleting import config %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result for import config %s: %w", id, err)
	}
	if affected == 0 {
		return ErrImportConfigNotFound
	}
	return nil
}
