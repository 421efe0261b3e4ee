package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App  AppConfig  `mapstructure:"app"  validate:"required"`
	Data DataConfig `mapstructure:"data" validate:"required"`
	Quiz QuizConfig `mapstructure:"quiz" validate:"required"`
}

// AppConfig contains process-wide settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DataConfig describes where the flashcard collection is loaded from.
type DataConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// QuizConfig contains quiz generation settings. DefaultQuestions is the
// question count used when the learner does not pick one; it is bounded the
// same way the interactive prompt is.
type QuizConfig struct {
	DefaultQuestions int `mapstructure:"default_questions" validate:"required,gt=0,lte=50"`
}
