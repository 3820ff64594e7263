package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bdeleeuw/clipstash/pkg/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Clipboards.Default != "0" {
		t.Errorf("Clipboards.Default = %q, want %q", cfg.Clipboards.Default, "0")
	}
	if cfg.Copy.Safe {
		t.Error("Copy.Safe should default to false (fast copies)")
	}
	if cfg.Copy.Conflict != models.ConflictAsk {
		t.Errorf("Copy.Conflict = %s, want ask", cfg.Copy.Conflict)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"EmptyDefaultClipboard", func(c *Config) { c.Clipboards.Default = "" }, true},
		{"PathInClipboardName", func(c *Config) { c.Clipboards.Default = "a/b" }, true},
		{"OnceConflictPolicy", func(c *Config) { c.Copy.Conflict = models.ConflictSkipOnce }, true},
		{"StickyConflictPolicy", func(c *Config) { c.Copy.Conflict = models.ConflictReplaceAll }, false},
		{"BadOutputFormat", func(c *Config) { c.Output.Format = "xml" }, true},
		{"BadLogFormat", func(c *Config) { c.Logging.Format = "yaml" }, true},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Clipboards.Default = "work"
	cfg.Copy.Safe = true
	cfg.Logging.Enabled = true
	cfg.Logging.Level = "debug"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Clipboards.Default != "work" {
		t.Errorf("Clipboards.Default = %q, want work", loaded.Clipboards.Default)
	}
	if !loaded.Copy.Safe {
		t.Error("Copy.Safe should survive the roundtrip")
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", loaded.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "copy:\n  safe: true\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}
		if !cfg.Copy.Safe {
			t.Error("Copy.Safe should be overridden")
		}
		if cfg.Clipboards.Default != "0" {
			t.Errorf("Clipboards.Default = %q, unset keys should keep defaults", cfg.Clipboards.Default)
		}
	})

	t.Run("InvalidValuesRejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "output:\n  format: xml\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should reject an invalid output format")
		}
	})

	t.Run("MissingFileFails", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("LoadFromFile() should fail for a missing file")
		}
	})
}

func TestBaseDir(t *testing.T) {
	cfg := Default()
	if cfg.BaseDir() == "" {
		t.Error("BaseDir() should fall back to a platform default")
	}

	cfg.Clipboards.Dir = "/tmp/clips"
	if cfg.BaseDir() != "/tmp/clips" {
		t.Errorf("BaseDir() = %q, want configured /tmp/clips", cfg.BaseDir())
	}
}
