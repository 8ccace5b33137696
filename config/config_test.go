package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DATABASE_PATH", "LLM_PROVIDER", "AUTO_PLAN_CRON"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.DatabasePath != "./daygo.db" {
		t.Errorf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.LLMProvider != "openai" {
		t.Errorf("expected default provider openai, got %s", cfg.LLMProvider)
	}
	if cfg.AutoPlanCron != "0 6 * * *" {
		t.Errorf("expected default auto-plan cron, got %s", cfg.AutoPlanCron)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("AUTO_PLAN_CRON", "30 5 * * *")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Errorf("expected addr override, got %s", cfg.Addr)
	}
	if cfg.LLMProvider != "anthropic" || cfg.AnthropicKey != "test-key" {
		t.Errorf("expected provider override, got %+v", cfg)
	}
	if cfg.AutoPlanCron != "30 5 * * *" {
		t.Errorf("expected cron override, got %s", cfg.AutoPlanCron)
	}
}
