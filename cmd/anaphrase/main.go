package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/wordtools/anaphrase/config"
	"github.com/wordtools/anaphrase/output"
	"github.com/wordtools/anaphrase/solver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	dictPath := flag.String("dictionary", cfg.DictionaryPath, "word list file, one word per line; empty uses the bundled list")
	extraDicts := flag.String("extra-dictionary", "", "supplementary word list file appended to the dictionary")
	maxWords := flag.Int("max-words", cfg.MaxWords, "maximum words per solution")
	minWordLength := flag.Int("min-word-length", cfg.MinWordLength, "minimum letters per word")
	timeout := flag.Duration("timeout", cfg.Timeout, "wall-clock budget per phrase")
	maxSolutions := flag.Int("max-solutions", cfg.MaxSolutions, "stop after this many solutions")
	mustStartWith := flag.String("must-start-with", "", "letters the first word must start with")
	canOnlyStartWith := flag.String("can-only-ever-start-with", "", "letters every word must start with")
	mustNotStartWith := flag.String("must-not-start-with", "", "letters no word may start with")
	outFile := flag.String("output", cfg.OutputFile, "output file; empty derives a name per phrase")
	debug := flag.Bool("debug", cfg.Debug, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	phrases := flag.Args()
	if len(phrases) == 0 {
		fmt.Fprintln(os.Stderr, "usage: anaphrase [flags] PHRASE [PHRASE...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	s, err := solver.New(*dictPath)
	if err != nil {
		log.Fatal().Err(err).Msg("building solver")
	}
	if *extraDicts != "" {
		if err := s.LoadDictionaryFile(*extraDicts); err != nil {
			log.Fatal().Err(err).Msg("loading supplementary dictionary")
		}
	}
	log.Debug().Int("words", s.Index().Len()).Msg("dictionary ready")

	constraints := solver.Constraints{
		MustStartWith:        *mustStartWith,
		CanOnlyEverStartWith: *canOnlyStartWith,
		MustNotStartWith:     *mustNotStartWith,
		MaxWords:             *maxWords,
		MinWordLength:        *minWordLength,
		Timeout:              *timeout,
		MaxSolutions:         *maxSolutions,
	}

	// Solves only read the index, so phrases can run concurrently
	// against the one solver instance.
	var g errgroup.Group
	for _, phrase := range phrases {
		phrase := phrase
		g.Go(func() error {
			res, err := s.Solve(phrase, constraints)
			if err != nil {
				return fmt.Errorf("solving %q: %w", phrase, err)
			}
			path := *outFile
			if path == "" || len(phrases) > 1 {
				path = output.FileName(phrase, constraints)
			}
			if err := output.WriteFile(path, res); err != nil {
				return err
			}
			log.Info().
				Str("phrase", phrase).
				Int("solutions", len(res.Solutions)).
				Stringer("status", res.Status).
				Dur("elapsed", res.Elapsed).
				Msg("done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
