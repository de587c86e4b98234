package summary

import (
	"os"
)

type Config struct {
	// APIKey empty means the summarizer runs unconfigured and always
	// falls back; that is a supported mode, not an error.
	APIKey  string
	BaseURL string
	Model   string
}

func LoadConfigFromEnv() *Config {
	model := os.Getenv("SUMMARY_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("SUMMARY_BASE_URL"),
		Model:   model,
	}
}
