package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"classpoints/internal/database"
	"classpoints/internal/models"
)

// settingsRowID is the id of the single settings row
const settingsRowID = 1

// SettingsRepository handles the single global point-configuration row
type SettingsRepository struct {
	db *database.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetPointConfig retrieves the current global weights, falling back to the
// documented defaults when none are stored
func (r *SettingsRepository) GetPointConfig() (models.PointConfig, error) {
	var configJSON string
	err := r.db.QueryRow(`SELECT point_config FROM settings WHERE id = ?`, settingsRowID).Scan(&configJSON)
	if err == sql.ErrNoRows {
		return models.DefaultPointConfig(), nil
	}
	if err != nil {
		return models.DefaultPointConfig(), fmt.Errorf("failed to get point config: %w", err)
	}

	var cfg models.PointConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return models.DefaultPointConfig(), fmt.Errorf("failed to decode point config: %w", err)
	}
	return cfg, nil
}

// SavePointConfig upserts the single global configuration row
func (r *SettingsRepository) SavePointConfig(cfg models.PointConfig) error {
	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode point config: %w", err)
	}
	_, err = r.db.Exec(r.db.Dialect.UpsertPointConfig(), settingsRowID, string(configJSON))
	if err != nil {
		return fmt.Errorf("failed to save point config: %w", err)
	}
	return nil
}
