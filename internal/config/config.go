package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagBindings maps viper keys to the CLI flag that overrides them.
// Resolution order is flag > environment variable > default.
var flagBindings = map[string]string{
	KeyModel:            "model",
	KeyMaxTokens:        "max-tokens",
	KeyTemperature:      "temperature",
	KeyTruncationLimit:  "truncation-limit",
	KeyNoTruncation:     "no-truncation",
	KeyHint:             "hint",
	KeySkipConfirmation: "yes",
	KeyLogLevel:         "log-level",
}

func Init(root *cobra.Command) {
	viper.SetEnvPrefix("llm_commit")
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		for key, flag := range flagBindings {
			if f := root.Flags().Lookup(flag); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyStyle, "")
	viper.SetDefault(KeyModel, "llama3.2")
	viper.SetDefault(KeyMaxTokens, 400)
	viper.SetDefault(KeyTemperature, 0.3)
	viper.SetDefault(KeyTruncationLimit, 4000)
	viper.SetDefault(KeyNoTruncation, false)
	viper.SetDefault(KeyOllamaURL, "http://localhost:11434")
	viper.SetDefault(KeyCallTimeout, "2m")
	viper.SetDefault(KeyLogLevel, "info")
}

func Style() string          { return viper.GetString(KeyStyle) }
func Model() string          { return viper.GetString(KeyModel) }
func MaxTokens() int         { return viper.GetInt(KeyMaxTokens) }
func Temperature() float64   { return viper.GetFloat64(KeyTemperature) }
func TruncationLimit() int   { return viper.GetInt(KeyTruncationLimit) }
func NoTruncation() bool     { return viper.GetBool(KeyNoTruncation) }
func Hint() string           { return viper.GetString(KeyHint) }
func SkipConfirmation() bool { return viper.GetBool(KeySkipConfirmation) }
func OllamaURL() string      { return viper.GetString(KeyOllamaURL) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }
func CallTimeout() string    { return viper.GetString(KeyCallTimeout) }
