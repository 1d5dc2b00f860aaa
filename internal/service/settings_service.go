package service

import (
	"fmt"

	"classpoints/internal/models"
)

// PointStore reads and writes the global point configuration
type PointStore interface {
	GetPointConfig() (models.PointConfig, error)
	SavePointConfig(cfg models.PointConfig) error
}

// SettingsService manages the global point configuration. Changing it only
// affects sessions materialized afterwards; stored sessions keep the snapshot
// they were saved with.
type SettingsService struct {
	settings PointStore
}

// NewSettingsService creates a new settings service
func NewSettingsService(settings PointStore) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the current point configuration
func (s *SettingsService) Get() (models.PointConfig, error) {
	return s.settings.GetPointConfig()
}

// Update replaces the point configuration
func (s *SettingsService) Update(cfg models.PointConfig) (models.PointConfig, error) {
	if err := s.settings.SavePointConfig(cfg); err != nil {
		return models.PointConfig{}, fmt.Errorf("failed to save point config: %w", err)
	}
	return cfg, nil
}
