package commitgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/roivaz/llm-commit/internal/config"
	"github.com/roivaz/llm-commit/internal/prompt"
)

// Config is the resolved, immutable configuration for one run. It is built
// exactly once from merged CLI/env sources before the pipeline starts.
type Config struct {
	Style            prompt.Style
	Model            string
	MaxTokens        int
	Temperature      float64
	TruncationLimit  int
	NoTruncation     bool
	Hint             string
	SkipConfirmation bool
	DryRun           bool
	OllamaURL        string
	CallTimeout      time.Duration
	Logger           logr.Logger
}

// StyleFlags carries the mutually exclusive style selector flags.
type StyleFlags struct {
	Semantic     bool
	Conventional bool
}

// LoadConfig resolves and validates the run configuration. Precedence is
// flag > environment variable > default, handled by the config package; this
// function owns validation and the style selection rules.
func LoadConfig(flags StyleFlags) (Config, error) {
	style, err := resolveStyle(flags, config.Style())
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Style:            style,
		Model:            config.Model(),
		MaxTokens:        config.MaxTokens(),
		Temperature:      config.Temperature(),
		TruncationLimit:  config.TruncationLimit(),
		NoTruncation:     config.NoTruncation(),
		Hint:             config.Hint(),
		SkipConfirmation: config.SkipConfirmation(),
		OllamaURL:        config.OllamaURL(),
	}

	if cfg.MaxTokens <= 0 {
		return Config{}, &ConfigurationError{Reason: fmt.Sprintf("max tokens must be positive, got %d", cfg.MaxTokens)}
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return Config{}, &ConfigurationError{Reason: fmt.Sprintf("temperature must be within [0, 2], got %g", cfg.Temperature)}
	}
	if cfg.TruncationLimit < 0 {
		return Config{}, &ConfigurationError{Reason: fmt.Sprintf("truncation limit must not be negative, got %d", cfg.TruncationLimit)}
	}
	// A limit of zero means truncation disabled rather than an empty prompt.
	if cfg.TruncationLimit == 0 {
		cfg.NoTruncation = true
	}

	timeout, err := parseDuration(config.CallTimeout(), 2*time.Minute)
	if err != nil {
		return Config{}, &ConfigurationError{Reason: fmt.Sprintf("invalid call timeout: %v", err)}
	}
	cfg.CallTimeout = timeout

	return cfg, nil
}

func resolveStyle(flags StyleFlags, envStyle string) (prompt.Style, error) {
	if flags.Semantic && flags.Conventional {
		return "", &ConfigurationError{Reason: "cannot use both --semantic and --conventional simultaneously"}
	}
	switch {
	case flags.Semantic:
		return prompt.StyleSemantic, nil
	case flags.Conventional:
		return prompt.StyleConventional, nil
	default:
		return prompt.ParseStyle(envStyle), nil
	}
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}
