// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envFile := filepath.Join(dir, "wavconv.env")
	if err := os.WriteFile(envFile, []byte("WAVCONV_BYTE_DEPTH=3\nWAVCONV_BUFFER_FRAMES=512\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		envFile string
		env     map[string]string
		want    config
		wantErr bool
	}{
		{name: "defaults", want: config{ByteDepth: 2, BufferFrames: 4096}},
		{name: "missing default file", envFile: defaultEnvFile, want: config{ByteDepth: 2, BufferFrames: 4096}},
		{name: "missing explicit file", envFile: filepath.Join(dir, "nope.env"), wantErr: true},
		{name: "file", envFile: envFile, want: config{ByteDepth: 3, BufferFrames: 512}},
		{
			name:    "environment wins over file",
			envFile: envFile,
			env:     map[string]string{"WAVCONV_BYTE_DEPTH": "4", "WAVCONV_FLOAT": "true"},
			want:    config{ByteDepth: 4, Float: true, BufferFrames: 512},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loadConfig(tt.envFile, envMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Error("loadConfig() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("loadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"depth", map[string]string{"WAVCONV_BYTE_DEPTH": "three"}},
		{"float", map[string]string{"WAVCONV_FLOAT": "maybe"}},
		{"buffer", map[string]string{"WAVCONV_BUFFER_FRAMES": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := loadConfig("", envMap(tt.env)); err == nil {
				t.Error("loadConfig() error = nil, want parse error")
			}
		})
	}
}
