package config

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.DictionaryPath, "")
	is.Equal(cfg.MaxWords, 4)
	is.Equal(cfg.MinWordLength, 2)
	is.Equal(cfg.Timeout, 30*time.Second)
	is.Equal(cfg.MaxSolutions, 20000)
	is.Equal(cfg.Debug, false)
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("ANAPHRASE_MAX_WORDS", "6")
	t.Setenv("ANAPHRASE_TIMEOUT", "5s")
	t.Setenv("ANAPHRASE_DEBUG", "true")
	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.MaxWords, 6)
	is.Equal(cfg.Timeout, 5*time.Second)
	is.Equal(cfg.Debug, true)
}
