package database

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
)

const migrationsRoot = "../../migrations"

func migrationFiles(t *testing.T, subdir string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(migrationsRoot, subdir, "*.sql"))
	if err != nil {
		t.Fatalf("glob %s migrations: %v", subdir, err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)
	return names
}

// Every dialect must carry the same ordered migration set; a file added to
// one subdirectory and forgotten in another would silently skew the schemas.
func TestMigrationDirectoriesAligned(t *testing.T) {
	subdirs := []string{
		NewSQLiteDialect().MigrationsSubdir(),
		NewPostgresDialect().MigrationsSubdir(),
		NewMySQLDialect().MigrationsSubdir(),
	}

	reference := migrationFiles(t, subdirs[0])
	if len(reference) == 0 {
		t.Fatalf("no migration files found under %s/%s", migrationsRoot, subdirs[0])
	}

	for _, subdir := range subdirs[1:] {
		names := migrationFiles(t, subdir)
		if len(names) != len(reference) {
			t.Fatalf("%s has %d migrations, %s has %d", subdir, len(names), subdirs[0], len(reference))
		}
		for i := range reference {
			if names[i] != reference[i] {
				t.Errorf("%s migration %d = %s, want %s", subdir, i, names[i], reference[i])
			}
		}
	}
}

// MySQL rejects bare TEXT columns in primary keys and indexes (error 1170),
// so the mysql schema must use length-bounded types for every keyed column.
func TestMySQLMigrationsUseBoundedKeys(t *testing.T) {
	files, err := filepath.Glob(filepath.Join(migrationsRoot, NewMySQLDialect().MigrationsSubdir(), "*.sql"))
	if err != nil {
		t.Fatalf("glob mysql migrations: %v", err)
	}

	keyedColumn := regexp.MustCompile(`^\s*(id|parent_id|student_id|session_id|date)\s+(\S+)`)
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		for _, line := range strings.Split(string(content), "\n") {
			m := keyedColumn.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if upper := strings.ToUpper(m[2]); upper == "TEXT" || upper == "BLOB" {
				t.Errorf("%s: keyed column %s declared as %s, want a length-bounded type",
					filepath.Base(file), m[1], m[2])
			}
		}
	}
}
