// SPDX-License-Identifier: EPL-2.0

package wavio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPreflightWritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	existing := filepath.Join(dir, "existing.wav")
	if err := os.WriteFile(existing, []byte("keep me"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"new file", filepath.Join(dir, "new.wav"), nil},
		{"existing file", existing, nil},
		{"directory", dir, ErrPathIsDirectory},
		{"missing parent", filepath.Join(dir, "nope", "out.wav"), os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := PreflightWritable(tt.path)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("PreflightWritable() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("PreflightWritable() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, err := os.ReadFile(existing)
	if err != nil || string(got) != "keep me" {
		t.Errorf("existing file changed: %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "new.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("PreflightWritable() created the target: %v", err)
	}
}

func TestPreflightWritable_LeavesNoProbe(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := PreflightWritable(filepath.Join(dir, "out.wav")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory has %d entries after preflight, want 0", len(entries))
	}
}
