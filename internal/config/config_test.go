package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.App.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.App.Port)
	}
	if cfg.Analysis.PerDocContextChars != 2000 {
		t.Errorf("per-doc context chars = %d, want 2000", cfg.Analysis.PerDocContextChars)
	}
	if cfg.Upload.MaxFiles != 25 {
		t.Errorf("max files = %d, want 25", cfg.Upload.MaxFiles)
	}
	if len(cfg.Analysis.ComparisonKeywords) == 0 || len(cfg.Analysis.SearchKeywords) == 0 {
		t.Error("classifier keyword lists must ship with defaults")
	}
	if len(cfg.Analysis.ResumeKeywords) == 0 {
		t.Error("resume keyword list must ship with defaults")
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPLOAD_MAX_FILES", "5")
	t.Setenv("ANALYSIS_PER_DOC_CONTEXT_CHARS", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.App.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.App.Port)
	}
	if cfg.Upload.MaxFiles != 5 {
		t.Errorf("max files = %d, want 5", cfg.Upload.MaxFiles)
	}
	if cfg.Analysis.PerDocContextChars != 500 {
		t.Errorf("per-doc context chars = %d, want 500", cfg.Analysis.PerDocContextChars)
	}
}

func TestMaxFileSizeBytes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Upload.MaxFileSizeMB = 16
	if got := cfg.MaxFileSizeBytes(); got != 16<<20 {
		t.Errorf("MaxFileSizeBytes = %d, want %d", got, 16<<20)
	}
}
