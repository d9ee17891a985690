package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	// clear env vars
	_ = os.Unsetenv("STUDYHUB_HTTP_PORT")
	_ = os.Unsetenv("STUDYHUB_DEMO_USER_ID")
	_ = os.Unsetenv("STUDYHUB_OPENAI_MODEL")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.DemoUserID != "user-1" || cfg.OpenAIModel != "gpt-5" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Fatalf("unexpected base url default: %s", cfg.OpenAIBaseURL)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("STUDYHUB_OPENAI_MODEL", "test-model")
	_ = os.Setenv("STUDYHUB_HTTP_PORT", "9191")
	defer func() {
		_ = os.Unsetenv("STUDYHUB_OPENAI_MODEL")
		_ = os.Unsetenv("STUDYHUB_HTTP_PORT")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.OpenAIModel != "test-model" {
		t.Fatalf("model env override failed, got %s", cfg.OpenAIModel)
	}
	if cfg.HTTPPort != 9191 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
}

func TestGetHTTPAddr(t *testing.T) {
	cfg := NewForTesting()
	if cfg.GetHTTPAddr() != ":8080" {
		t.Fatalf("unexpected addr %s", cfg.GetHTTPAddr())
	}
	if !cfg.IsTesting() || cfg.IsProduction() {
		t.Fatalf("testing config should report testing env")
	}
}
