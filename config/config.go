// Package config holds process configuration for the anaphrase tools.
// Values come from defaults, an optional anaphrase.yaml in the working
// directory, and ANAPHRASE_* environment variables, in rising
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// DictionaryPath points at a word list file, one word per line.
	// Empty means use the bundled default list.
	DictionaryPath string
	MaxWords       int
	MinWordLength  int
	Timeout        time.Duration
	MaxSolutions   int
	OutputFile     string
	Debug          bool
}

// Load reads configuration. A missing config file is fine; a malformed
// one is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("dictionary-path", "")
	v.SetDefault("max-words", 4)
	v.SetDefault("min-word-length", 2)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("max-solutions", 20000)
	v.SetDefault("output-file", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("anaphrase")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("anaphrase")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{
		DictionaryPath: v.GetString("dictionary-path"),
		MaxWords:       v.GetInt("max-words"),
		MinWordLength:  v.GetInt("min-word-length"),
		Timeout:        v.GetDuration("timeout"),
		MaxSolutions:   v.GetInt("max-solutions"),
		OutputFile:     v.GetString("output-file"),
		Debug:          v.GetBool("debug"),
	}, nil
}
