package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "csvpage") {
		t.Errorf("GetConfigDir() = %v, should contain 'csvpage'", configDir)
	}

	if runtime.GOOS == "linux" && configDir != filepath.Join("/tmp/xdg", "csvpage") {
		t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME/csvpage", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Header {
		t.Error("Default().Header should be false so pages keep rows-1 lines")
	}
	if cfg.Fallback != "fail" {
		t.Errorf("Default().Fallback = %q, want fail", cfg.Fallback)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\nformat: aligned\nfallback: dump\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format != FormatAligned || cfg.Fallback != "dump" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Header || cfg.DefaultHeight != 24 {
		t.Errorf("absent keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "version: [1\n"},
		{"bad version", "version: 2\n"},
		{"bad format", "version: 1\nformat: html\n"},
		{"bad fallback", "version: 1\nfallback: retry\n"},
		{"height too small", "version: 1\ndefault_height: 1\n"},
		{"bad delimiter", "version: 1\ndelimiter: ab\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Format = FormatAligned
	cfg.Header = true
	cfg.DefaultHeight = 40
	cfg.Delimiter = ";"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be gone after Save()")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# csvpage configuration file") {
		t.Error("saved file should start with the header comment")
	}
}

func TestComma(t *testing.T) {
	tests := []struct {
		delim   string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{";", ';', false},
		{`\t`, '\t', false},
		{"|", '|', false},
		{"ab", 0, true},
		{`"`, 0, true},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Delimiter = tt.delim
		got, err := cfg.Comma()
		if (err != nil) != tt.wantErr {
			t.Errorf("Comma(%q) error = %v, wantErr %v", tt.delim, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Comma(%q) = %q, want %q", tt.delim, got, tt.want)
		}
	}
}
