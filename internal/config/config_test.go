package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/vinquiz/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "file::memory:")
		t.Setenv("DATABASE_DRIVER", "sqlite")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.HTTPAddr != ":8080" {
			t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
		}
		if cfg.Quiz.MaxResample != 50 {
			t.Errorf("MaxResample = %d, want 50", cfg.Quiz.MaxResample)
		}
		if cfg.Catalog.CacheTTL != 10*time.Minute {
			t.Errorf("CacheTTL = %v, want 10m", cfg.Catalog.CacheTTL)
		}
		if cfg.Catalog.PageSize != 10 {
			t.Errorf("PageSize = %d, want 10", cfg.Catalog.PageSize)
		}
		if cfg.PostLanguage != "en" {
			t.Errorf("PostLanguage = %q, want en", cfg.PostLanguage)
		}
	})

	t.Run("MissingDSN", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "")
		if _, err := config.Load(); err == nil {
			t.Fatal("Load should fail without a DSN")
		}
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "whatever")
		t.Setenv("DATABASE_DRIVER", "oracle")
		if _, err := config.Load(); err == nil {
			t.Fatal("Load should reject an unsupported driver")
		}
	})

	t.Run("InvalidResample", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "file::memory:")
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("QUIZ_MAX_RESAMPLE", "0")
		if _, err := config.Load(); err == nil {
			t.Fatal("Load should reject a zero resample cap")
		}
	})
}
