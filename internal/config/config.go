// Package config holds the settings of the furigana command.
//
// Settings are read from the environment, after loading an optional .env file
// from the working directory. Command-line flags take precedence; they are
// applied by the command itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidSetting is returned by Load for unsupported values of
// FURIGANA_FORMAT or FURIGANA_TRACE.
var ErrInvalidSetting = errors.New("invalid setting")

// Config is the configuration of the furigana command.
type Config struct {
	Format     string // output format: text, json or tsv
	TraceLevel string // Error, Info or Debug
	Katakana   bool   // re-case hiragana readings of katakana words
	Prepare    bool   // fold halfwidth forms and compose input
	Progress   bool   // show a progress spinner on stderr
}

// Load reads the configuration. Missing variables get their defaults, invalid
// booleans fall back to them. An unknown format or trace level is an error.
//
//   FURIGANA_FORMAT    text
//   FURIGANA_TRACE     Error
//   FURIGANA_KATAKANA  true
//   FURIGANA_PREPARE   false
//   FURIGANA_PROGRESS  false
func Load(envfiles ...string) (*Config, error) {
	// a missing .env file is not an error
	_ = godotenv.Load(envfiles...)

	cfg := &Config{
		Format:     getEnv("FURIGANA_FORMAT", "text"),
		TraceLevel: getEnv("FURIGANA_TRACE", "Error"),
		Katakana:   getEnvAsBool("FURIGANA_KATAKANA", true),
		Prepare:    getEnvAsBool("FURIGANA_PREPARE", false),
		Progress:   getEnvAsBool("FURIGANA_PROGRESS", false),
	}
	switch cfg.Format {
	case "text", "json", "tsv":
	default:
		return nil, fmt.Errorf("%w: FURIGANA_FORMAT=%q", ErrInvalidSetting, cfg.Format)
	}
	switch strings.ToLower(cfg.TraceLevel) {
	case "error", "info", "debug":
	default:
		return nil, fmt.Errorf("%w: FURIGANA_TRACE=%q", ErrInvalidSetting, cfg.TraceLevel)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
