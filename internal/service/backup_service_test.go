package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"classpoints/internal/models"
)

func TestBackupExport(t *testing.T) {
	users := &fakeUserStore{users: []models.User{
		{ID: "t1", Username: "teacher", Name: "Miss Amal", Role: models.RoleTeacher},
	}}
	sessions := &fakeSessionStore{sessions: []models.ClassSession{
		{ID: "a", Date: "2024-01-07", ClassDay: models.ClassDaySunday},
	}}
	settings := &fakeSettingsStore{cfg: models.DefaultPointConfig()}

	svc := NewBackupService(users, sessions, settings)
	snapshot, err := svc.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if snapshot.Version != SnapshotVersion {
		t.Errorf("version = %q, want %q", snapshot.Version, SnapshotVersion)
	}
	if len(snapshot.Users) != 1 || len(snapshot.Sessions) != 1 {
		t.Errorf("snapshot sizes = %d users, %d sessions; want 1/1", len(snapshot.Users), len(snapshot.Sessions))
	}
	if snapshot.Settings != models.DefaultPointConfig() {
		t.Errorf("settings = %+v, want defaults", snapshot.Settings)
	}
	if snapshot.ExportedAt.IsZero() {
		t.Error("exported_at is zero")
	}
}

func TestBackupWriteToProducesJSON(t *testing.T) {
	svc := NewBackupService(&fakeUserStore{}, &fakeSessionStore{}, &fakeSettingsStore{cfg: models.DefaultPointConfig()})

	var buf bytes.Buffer
	if err := svc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Version != SnapshotVersion {
		t.Errorf("decoded version = %q, want %q", decoded.Version, SnapshotVersion)
	}
}

func TestBackupReadFromRestores(t *testing.T) {
	users := &fakeUserStore{users: []models.User{
		{ID: "keep", Username: "kept", Name: "Kept", Role: models.RoleStudent},
	}}
	sessions := &fakeSessionStore{}
	settings := &fakeSettingsStore{cfg: models.DefaultPointConfig()}
	svc := NewBackupService(users, sessions, settings)

	doc := `{
		"version": "1",
		"exported_at": "2024-01-07T10:00:00Z",
		"users": [{"id": "s1", "username": "yara", "name": "Yara", "role": "STUDENT"}],
		"sessions": [{"id": "a", "date": "2024-01-07", "classDay": "Sunday", "records": [], "pointConfig": {}}],
		"settings": {"arrival": 3}
	}`

	snapshot, err := svc.ReadFrom(bytes.NewReader([]byte(doc)))
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if len(snapshot.Users) != 1 {
		t.Fatalf("snapshot users = %d, want 1", len(snapshot.Users))
	}

	if len(users.users) != 2 {
		t.Errorf("stored users = %d, want existing plus restored", len(users.users))
	}
	if len(sessions.sessions) != 1 || sessions.sessions[0].ID != "a" {
		t.Errorf("stored sessions = %+v, want the restored one", sessions.sessions)
	}
	if settings.cfg.Arrival != 3 {
		t.Errorf("restored arrival weight = %d, want 3", settings.cfg.Arrival)
	}
}

func TestBackupReadFromRejectsBadInput(t *testing.T) {
	svc := NewBackupService(&fakeUserStore{}, &fakeSessionStore{}, &fakeSettingsStore{})

	if _, err := svc.ReadFrom(bytes.NewReader([]byte("not json"))); err == nil {
		t.Error("expected an error for malformed input")
	}
	if _, err := svc.ReadFrom(bytes.NewReader([]byte(`{"version":"99"}`))); err == nil {
		t.Error("expected an error for an unknown version")
	}
}

func TestBackupExportAbortsOnAnyFailure(t *testing.T) {
	svc := NewBackupService(&fakeUserStore{err: errStoreDown}, &fakeSessionStore{}, &fakeSettingsStore{cfg: models.DefaultPointConfig()})
	if _, err := svc.Export(); !errors.Is(err, errStoreDown) {
		t.Errorf("Export() error = %v, want wrapped store failure", err)
	}

	svc = NewBackupService(&fakeUserStore{}, &fakeSessionStore{err: errStoreDown}, &fakeSettingsStore{cfg: models.DefaultPointConfig()})
	if _, err := svc.Export(); !errors.Is(err, errStoreDown) {
		t.Errorf("Export() error = %v, want wrapped store failure", err)
	}
}
