package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.ContentProvider != "gemini" {
		t.Errorf("expected gemini default content provider, got %s", cfg.ContentProvider)
	}
	if cfg.SearchCount <= 0 {
		t.Errorf("expected positive search count, got %d", cfg.SearchCount)
	}
	if len(cfg.Providers) == 0 || cfg.Providers[0] != "gemini" {
		t.Errorf("expected generative-first default order, got %v", cfg.Providers)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Providers, Default().Providers) {
		t.Errorf("expected default provider order, got %v", cfg.Providers)
	}
}

func TestLoadReordersProvidersFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitewright.yml")
	yml := "providers:\n  - pexels\n  - pixabay\n  - gemini\ncontent_provider: ollama\nsearch_count: 5\n"
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"pexels", "pixabay", "gemini"}
	if !reflect.DeepEqual(cfg.Providers, want) {
		t.Errorf("provider order = %v, want %v", cfg.Providers, want)
	}
	if cfg.ContentProvider != "ollama" {
		t.Errorf("content provider = %s, want ollama", cfg.ContentProvider)
	}
	if cfg.SearchCount != 5 {
		t.Errorf("search count = %d, want 5", cfg.SearchCount)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for explicitly named missing config")
	}
}

func TestEnvOverridesProviderOrder(t *testing.T) {
	t.Setenv("SITEWRIGHT_PROVIDER_ORDER", "websearch, pexels ,gemini")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"websearch", "pexels", "gemini"}
	if !reflect.DeepEqual(cfg.Providers, want) {
		t.Errorf("provider order = %v, want %v", cfg.Providers, want)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.Providers = []string{"gemini", "imgur"}
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for unknown provider")
	}

	cfg = Default()
	cfg.Providers = nil
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for empty provider order")
	}

	cfg = Default()
	cfg.ContentProvider = "gpt4"
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for unknown content provider")
	}
}
