package database

import "testing"

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		version  int
		ok       bool
	}{
		{"initial schema", "001_initial_schema.sql", 1, true},
		{"later version", "012_add_index.sql", 12, true},
		{"not sql", "001_notes.txt", 0, false},
		{"no numeric prefix", "abc_schema.sql", 0, false},
		{"zero version", "000_bad.sql", 0, false},
		{"too short", ".sql", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			version, ok := migrationVersion(tc.filename)
			if ok != tc.ok {
				t.Fatalf("migrationVersion(%q) ok = %v, want %v", tc.filename, ok, tc.ok)
			}
			if version != tc.version {
				t.Errorf("migrationVersion(%q) = %d, want %d", tc.filename, version, tc.version)
			}
		})
	}
}
