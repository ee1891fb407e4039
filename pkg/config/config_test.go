package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"

	"tableflip.dev/pedal/pkg/currency"
)

// isolate points HOME at an empty directory so a developer's own
// ~/.pedal.yaml does not leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PEDAL_CONFIG_PATH", t.TempDir())
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:8484" || cfg.UserID != 1 || cfg.Currency != currency.EUR {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.ServiceFee != 0.15 || cfg.GridLength != 35 || cfg.MobileMaxWidth != 100 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !filepath.IsAbs(cfg.BookmarksPath) {
		t.Fatalf("bookmarks path not expanded: %q", cfg.BookmarksPath)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	data := []byte("api-url: http://rental.test\ntoken: abc\nmobile-max-width: 90\ncurrency: usd\n")
	if err := os.WriteFile(filepath.Join(dir, ".pedal.yaml"), data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PEDAL_CONFIG_PATH", dir)
	t.Setenv("PEDAL_USER_ID", "42")
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://rental.test" || cfg.Token != "abc" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.UserID != 42 {
		t.Fatalf("env override not applied: %d", cfg.UserID)
	}
	if cfg.Currency != currency.USD {
		t.Fatalf("currency = %q", cfg.Currency)
	}
	if b := cfg.Breakpoints(); !b.IsMobile(90) || b.IsMobile(91) {
		t.Fatalf("mobile cutoff not applied")
	}
}

func TestLoadRejectsBadCurrency(t *testing.T) {
	t.Setenv("PEDAL_CONFIG_PATH", t.TempDir())
	t.Setenv("PEDAL_CURRENCY", "bogus")
	isolate(t)
	if _, err := Load(); err == nil {
		t.Fatalf("expected an error")
	}
}
