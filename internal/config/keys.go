package config

// Viper keys. With the LLM_COMMIT env prefix each key maps to the matching
// environment variable, e.g. "max_tokens" -> LLM_COMMIT_MAX_TOKENS.
const (
	KeyStyle            = "style"
	KeyModel            = "model"
	KeyMaxTokens        = "max_tokens"
	KeyTemperature      = "temperature"
	KeyTruncationLimit  = "truncation_limit"
	KeyNoTruncation     = "no_truncation"
	KeyHint             = "hint"
	KeySkipConfirmation = "skip_confirmation"
	KeyOllamaURL        = "ollama_url"
	KeyCallTimeout      = "call_timeout"
	KeyLogLevel         = "log_level"
)
