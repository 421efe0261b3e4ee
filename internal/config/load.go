package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables with sensible defaults.
// Variables use the FLASHQUIZ_ prefix with underscores separating groups,
// e.g. FLASHQUIZ_DATA_PATH, FLASHQUIZ_APP_LOG_LEVEL,
// FLASHQUIZ_QUIZ_DEFAULT_QUESTIONS.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.log_level", "info")
	v.SetDefault("data.path", "data/flashcards.json")
	v.SetDefault("quiz.default_questions", 10)

	v.SetEnvPrefix("FLASHQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
