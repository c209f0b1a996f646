package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"FURIGANA_FORMAT", "FURIGANA_TRACE", "FURIGANA_KATAKANA",
		"FURIGANA_PREPARE", "FURIGANA_PROGRESS"} {
		t.Setenv(key, "")
	}
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "text" || cfg.TraceLevel != "Error" || !cfg.Katakana || cfg.Prepare || cfg.Progress {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestEnvFile(t *testing.T) {
	for _, key := range []string{"FURIGANA_FORMAT", "FURIGANA_KATAKANA"} {
		t.Setenv(key, "") // restores the environment after the test
		os.Unsetenv(key)  // variables present in the environment are not loaded from file
	}
	envfile := filepath.Join(t.TempDir(), "test.env")
	content := "FURIGANA_FORMAT=json\nFURIGANA_KATAKANA=false\n"
	if err := os.WriteFile(envfile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(envfile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "json" {
		t.Errorf("expected format from env file to be json, is %q", cfg.Format)
	}
	if cfg.Katakana {
		t.Errorf("expected katakana re-casing to be switched off by env file")
	}
}

func TestInvalidBool(t *testing.T) {
	t.Setenv("FURIGANA_PREPARE", "maybe")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prepare {
		t.Errorf("invalid boolean should fall back to default false")
	}
}

func TestInvalidSettings(t *testing.T) {
	inputs := []struct{ key, value string }{
		{"FURIGANA_FORMAT", "xml"},
		{"FURIGANA_TRACE", "verbose"},
	}
	for _, input := range inputs {
		t.Run(input.key, func(t *testing.T) {
			t.Setenv(input.key, input.value)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); !errors.Is(err, ErrInvalidSetting) {
				t.Errorf("expected ErrInvalidSetting for %s=%q, have %v", input.key, input.value, err)
			}
		})
	}
}

func TestTraceLevelCase(t *testing.T) {
	t.Setenv("FURIGANA_TRACE", "debug")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TraceLevel != "debug" {
		t.Errorf("expected trace level to be kept as given, is %q", cfg.TraceLevel)
	}
}
