package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AkatukiSora/gto-poker-ref/internal/locale"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
)

// Tests in this file touch the process environment and do not run in parallel.

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "en" || cfg.Currency != "€" || cfg.Debug {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Defaults.Pot != 100 || cfg.Defaults.Bet != 50 || cfg.Defaults.Position != "BTN" || cfg.Defaults.Action != "RFI" {
		t.Errorf("unexpected command defaults: %+v", cfg.Defaults)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("GTOREF_LOCALE", "it")
	t.Setenv("GTOREF_DEFAULT_POT", "250")
	t.Setenv("GTOREF_DEBUG", "true")

	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "it" || cfg.Defaults.Pot != 250 || !cfg.Debug {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gtoref.yaml")
	data := []byte("locale: it\ncurrency: \"$\"\ndefaults:\n  pot: 40\n  bet: 10\n  position: CO\n  action: vs 3-Bet\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Currency != "$" || cfg.Defaults.Pot != 40 || cfg.Defaults.Position != "CO" || cfg.Defaults.Action != "vs 3-Bet" {
		t.Errorf("yaml not applied: %+v", cfg)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("GTOREF_CURRENCY=£\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("GTOREF_CURRENCY") })

	cfg, err := Load("", path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Currency != "£" {
		t.Errorf("currency = %q, want £", cfg.Currency)
	}

	// Boundary: a missing .env file is not an error
	if _, err := Load("", filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Locale: "en", Currency: "€", Defaults: Defaults{Pot: 100, Bet: 50, Position: "BTN", Action: "RFI"}}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := base
	bad.Locale = "fr"
	if err := bad.Validate(); !errors.Is(err, locale.ErrUnsupportedLocale) {
		t.Errorf("locale fr: %v", err)
	}
	bad = base
	bad.Defaults.Position = "HJ"
	if err := bad.Validate(); !errors.Is(err, ranges.ErrInvalidPosition) {
		t.Errorf("position HJ: %v", err)
	}
	bad = base
	bad.Defaults.Action = "limp"
	if err := bad.Validate(); !errors.Is(err, ranges.ErrInvalidAction) {
		t.Errorf("action limp: %v", err)
	}
	bad = base
	bad.Defaults.Pot = 0
	if err := bad.Validate(); err == nil {
		t.Error("pot 0 accepted")
	}
	bad = base
	bad.Defaults.Bet = -1
	if err := bad.Validate(); err == nil {
		t.Error("negative bet accepted")
	}
}
