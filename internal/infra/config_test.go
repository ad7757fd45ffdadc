package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/fotostudio-out")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.GeminiModel != "gemini-2.5-flash-image" {
		t.Fatalf("GeminiModel mismatch: got %q", cfg.GeminiModel)
	}
	if cfg.RetentionHours != 24 {
		t.Fatalf("RetentionHours mismatch: got %v want 24", cfg.RetentionHours)
	}
	if cfg.OutputDir != "/tmp/fotostudio-out" {
		t.Fatalf("OutputDir mismatch: got %q", cfg.OutputDir)
	}
}

func TestLoadConfigGeminiKeyFallback(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/fotostudio-out")
	t.Setenv("GOOGLE_AI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "secondary-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiAPIKey != "secondary-key" {
		t.Fatalf("GeminiAPIKey mismatch: got %q", cfg.GeminiAPIKey)
	}

	t.Setenv("GOOGLE_AI_API_KEY", "primary-key")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiAPIKey != "primary-key" {
		t.Fatalf("GeminiAPIKey should prefer GOOGLE_AI_API_KEY, got %q", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigRejectsNegativeRetention(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/fotostudio-out")
	t.Setenv("RETENTION_MAX_AGE_HOURS", "-1")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for negative RETENTION_MAX_AGE_HOURS")
	}
}
