package commitgen

import (
	"errors"
	"testing"
	"time"

	"github.com/roivaz/llm-commit/internal/config"
	"github.com/roivaz/llm-commit/internal/prompt"
)

func TestLoadConfigDefaults(t *testing.T) {
	config.Init(nil)

	cfg, err := LoadConfig(StyleFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Style != prompt.StyleDefault {
		t.Fatalf("expected default style, got %q", cfg.Style)
	}
	if cfg.Model != "llama3.2" || cfg.MaxTokens != 400 || cfg.Temperature != 0.3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TruncationLimit != 4000 || cfg.NoTruncation {
		t.Fatalf("unexpected truncation defaults: %+v", cfg)
	}
	if cfg.CallTimeout != 2*time.Minute {
		t.Fatalf("unexpected call timeout %s", cfg.CallTimeout)
	}
}

func TestLoadConfigConflictingStyleFlags(t *testing.T) {
	config.Init(nil)

	_, err := LoadConfig(StyleFlags{Semantic: true, Conventional: true})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestLoadConfigStyleFromEnv(t *testing.T) {
	config.Init(nil)
	t.Setenv("LLM_COMMIT_STYLE", "semantic")

	cfg, err := LoadConfig(StyleFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Style != prompt.StyleSemantic {
		t.Fatalf("expected semantic style from env, got %q", cfg.Style)
	}
}

func TestLoadConfigFlagBeatsEnvStyle(t *testing.T) {
	config.Init(nil)
	t.Setenv("LLM_COMMIT_STYLE", "semantic")

	cfg, err := LoadConfig(StyleFlags{Conventional: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Style != prompt.StyleConventional {
		t.Fatalf("flag must take precedence over env, got %q", cfg.Style)
	}
}

func TestLoadConfigEnvOverridesDefaults(t *testing.T) {
	config.Init(nil)
	t.Setenv("LLM_COMMIT_MAX_TOKENS", "123")
	t.Setenv("LLM_COMMIT_MODEL", "qwen2.5-coder")

	cfg, err := LoadConfig(StyleFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxTokens != 123 || cfg.Model != "qwen2.5-coder" {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

func TestLoadConfigZeroTruncationLimitDisables(t *testing.T) {
	config.Init(nil)
	t.Setenv("LLM_COMMIT_TRUNCATION_LIMIT", "0")

	cfg, err := LoadConfig(StyleFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.NoTruncation {
		t.Fatalf("zero limit must disable truncation")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"negative truncation limit": {"LLM_COMMIT_TRUNCATION_LIMIT", "-1"},
		"zero max tokens":           {"LLM_COMMIT_MAX_TOKENS", "0"},
		"temperature out of range":  {"LLM_COMMIT_TEMPERATURE", "3.5"},
		"bad call timeout":          {"LLM_COMMIT_CALL_TIMEOUT", "soon"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			config.Init(nil)
			t.Setenv(kv[0], kv[1])

			_, err := LoadConfig(StyleFlags{})
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
		})
	}
}
