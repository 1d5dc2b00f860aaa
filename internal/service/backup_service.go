package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"classpoints/internal/models"
)

// Snapshot is the complete exported state: a read-only aggregation of the
// three fetch contracts, serialized as a single document for backups.
type Snapshot struct {
	Version    string                `json:"version"`
	ExportedAt time.Time             `json:"exported_at"`
	Users      []models.User         `json:"users"`
	Sessions   []models.ClassSession `json:"sessions"`
	Settings   models.PointConfig    `json:"settings"`
}

// SnapshotVersion identifies the export document format
const SnapshotVersion = "1"

// BackupService produces and restores full-state snapshots
type BackupService struct {
	users    AccountStore
	sessions SessionStore
	settings PointStore
}

// NewBackupService creates a new backup service
func NewBackupService(users AccountStore, sessions SessionStore, settings PointStore) *BackupService {
	return &BackupService{users: users, sessions: sessions, settings: settings}
}

// Export gathers users, sessions, and settings concurrently and returns them
// as one snapshot. Any single read failure aborts the export.
func (s *BackupService) Export() (*Snapshot, error) {
	snapshot := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC(),
	}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		snapshot.Users, err = s.users.GetAll()
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Sessions, err = s.sessions.GetAll()
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Settings, err = s.settings.GetPointConfig()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to gather snapshot: %w", err)
	}

	return snapshot, nil
}

// WriteTo exports a snapshot and streams it as indented JSON
func (s *BackupService) WriteTo(w io.Writer) error {
	snapshot, err := s.Export()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadFrom decodes a snapshot document and merges it into the stores:
// users and sessions are upserted by id, the point configuration replaced.
// Records already present but absent from the snapshot are left alone.
func (s *BackupService) ReadFrom(r io.Reader) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %q", snapshot.Version)
	}

	for i := range snapshot.Users {
		if err := s.users.Save(&snapshot.Users[i]); err != nil {
			return nil, fmt.Errorf("failed to restore user %s: %w", snapshot.Users[i].ID, err)
		}
	}
	for i := range snapshot.Sessions {
		if err := s.sessions.Save(&snapshot.Sessions[i]); err != nil {
			return nil, fmt.Errorf("failed to restore session %s: %w", snapshot.Sessions[i].ID, err)
		}
	}
	if err := s.settings.SavePointConfig(snapshot.Settings); err != nil {
		return nil, fmt.Errorf("failed to restore settings: %w", err)
	}

	return &snapshot, nil
}
