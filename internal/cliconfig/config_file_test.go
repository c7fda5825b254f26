package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				URL:         "https://example.com/a.html",
				Genre:       "shoegaze",
				Output:      "/tmp/out.html",
				Timeout:     "5s",
				UserAgent:   "agent/1",
				MetricsFile: "/tmp/noisefetch.prom",
				LogLevel:    "debug",
				Watch:       &trueVal,
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				URL:         "https://example.com/a.html",
				Genre:       "shoegaze",
				Output:      "/tmp/out.html",
				Timeout:     5 * time.Second,
				UserAgent:   "agent/1",
				MetricsFile: "/tmp/noisefetch.prom",
				LogLevel:    "debug",
				Watch:       true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Output:  "file.html",
				Timeout: "1m",
			},
			changed: map[string]bool{"output": true},
			initial: Config{Output: "flag.html", Timeout: time.Second},
			expected: Config{
				Output:  "flag.html",
				Timeout: time.Minute,
			},
		},
		{
			name:       "genre replaces a lower layer url",
			fileConfig: FileConfig{Genre: "shoegaze"},
			changed:    map[string]bool{},
			initial:    Config{URL: "https://example.com/old.html", Output: "out.html"},
			expected:   Config{Genre: "shoegaze", Output: "out.html"},
		},
		{
			name: "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{Timeout: "soon"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
genre = "brooklyn indie"
output = "pages/brooklyn.html"
timeout = "10s"
watch = true
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Genre != "brooklyn indie" {
		t.Errorf("Genre = %v, want brooklyn indie", fc.Genre)
	}
	if fc.Output != "pages/brooklyn.html" {
		t.Errorf("Output = %v, want pages/brooklyn.html", fc.Output)
	}
	if fc.Timeout != "10s" {
		t.Errorf("Timeout = %v, want 10s", fc.Timeout)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Errorf("Watch = %v, want true", fc.Watch)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	if _, err := LoadFileConfig("/nonexistent/path/config.toml"); err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")
	if err := os.WriteFile(configPath, []byte("output = \nnot toml at all"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" && !strings.Contains(path, ".noisefetch") {
		t.Errorf("DefaultConfigPath() = %v, should contain .noisefetch", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existing, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existing) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
