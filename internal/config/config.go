// Package config handles loading and validating the medspeak configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the medspeak daemon.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Speech     SpeechConfig     `mapstructure:"speech"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds the API and health server settings.
type ServerConfig struct {
	Port       int `mapstructure:"port"`
	HealthPort int `mapstructure:"health_port"`
}

// TranslatorConfig configures the translation relay backend. There is no
// explicit backend switch: a present OpenAI API key selects the live
// translator, an absent one selects the offline phrase-table translator.
type TranslatorConfig struct {
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

// OpenAIConfig holds OpenAI chat completion settings.
type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// SpeechConfig configures the speech synthesis relay backend. As with the
// translator, credential presence selects the backend.
type SpeechConfig struct {
	Google GoogleTTSConfig `mapstructure:"google"`
}

// GoogleTTSConfig holds Google Cloud Text-to-Speech REST settings.
type GoogleTTSConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"` // base URL, overridable for tests
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./medspeak.yaml, ./configs/medspeak.yaml,
// /etc/medspeak/medspeak.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("translator.openai.api_key", "")
	v.SetDefault("translator.openai.model", "gpt-4o-mini")
	v.SetDefault("translator.openai.temperature", 0.2)
	v.SetDefault("translator.openai.max_tokens", 1000)
	v.SetDefault("speech.google.api_key", "")
	v.SetDefault("speech.google.endpoint", "https://texttospeech.googleapis.com/v1")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("medspeak")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/medspeak")
	}

	// Environment variables: MEDSPEAK_SERVER_PORT, MEDSPEAK_SPEECH_GOOGLE_API_KEY, etc.
	v.SetEnvPrefix("MEDSPEAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in credential fields (e.g., "${OPENAI_API_KEY}")
	cfg.Translator.OpenAI.APIKey = resolveEnvRef(cfg.Translator.OpenAI.APIKey)
	cfg.Speech.Google.APIKey = resolveEnvRef(cfg.Speech.Google.APIKey)

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env
// var value. An unset or empty variable resolves to "", so a dangling
// reference counts as an absent credential and selects the offline backend
// instead of making live calls with the literal placeholder.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
