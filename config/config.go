package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DatabasePath  string
	LLMProvider   string // openai, anthropic, ollama
	OpenAIKey     string
	AnthropicKey  string
	LLMModel      string
	OllamaBaseURL string
	AutoPlanCron  string // cron expression for the morning auto-plan run
	WebhookURL    string // optional notification webhook for auto-plan results
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		Addr:          envOr("ADDR", ":8080"),
		DatabasePath:  envOr("DATABASE_PATH", "./daygo.db"),
		LLMProvider:   envOr("LLM_PROVIDER", "openai"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:      os.Getenv("LLM_MODEL"),
		OllamaBaseURL: envOr("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		AutoPlanCron:  envOr("AUTO_PLAN_CRON", "0 6 * * *"),
		WebhookURL:    os.Getenv("PLAN_WEBHOOK_URL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
