// Package solver implements the multi-word anagram search: given a
// phrase and a dictionary, it enumerates ordered sequences of words
// whose combined letters are exactly a permutation of the phrase's,
// under starting-letter, word-count and word-length constraints, a
// wall-clock timeout and a solution cap.
package solver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wordtools/anaphrase/alphabet"
	"github.com/wordtools/anaphrase/dictionary"
)

// Solver owns a dictionary index and runs solves against it. The index
// is append-only; concurrent solves read it safely, and words loaded
// during a solve become visible only to solves started afterward.
type Solver struct {
	index *dictionary.Index
}

// New builds a solver. With an empty path the bundled default word
// list is used; otherwise the word list at path is loaded.
func New(dictionaryPath string) (*Solver, error) {
	if dictionaryPath == "" {
		return &Solver{index: dictionary.Default()}, nil
	}
	ix := dictionary.NewIndex()
	if _, err := ix.LoadFile(dictionaryPath); err != nil {
		return nil, err
	}
	return &Solver{index: ix}, nil
}

// NewFromIndex builds a solver around an existing index.
func NewFromIndex(ix *dictionary.Index) *Solver {
	return &Solver{index: ix}
}

// LoadDictionaryFile appends a supplementary word list to the index.
// Duplicates of already-loaded words are retained.
func (s *Solver) LoadDictionaryFile(path string) error {
	_, err := s.index.LoadFile(path)
	return err
}

// AddWords appends words to the index directly.
func (s *Solver) AddWords(words []string) {
	s.index.AddWords(words)
}

// Index exposes the underlying dictionary index.
func (s *Solver) Index() *dictionary.Index {
	return s.index
}

// Result is the outcome of one solve: the solutions in discovery
// order, why the search stopped, and enough metadata for an external
// writer to name its output.
type Result struct {
	Phrase      string
	Constraints Constraints
	Solutions   []Solution
	Status      Status
	Elapsed     time.Duration
}

// Solve runs one search. Validation errors (bad phrase, contradictory
// constraints, unusable dictionary) surface before any search begins;
// hitting the timeout or the solution cap is a normal status on the
// result, never an error.
func (s *Solver) Solve(phrase string, c Constraints) (*Result, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	target := alphabet.FromText(phrase)
	if target.IsEmpty() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhrase, phrase)
	}
	entries := s.index.Snapshot()
	if len(entries) == 0 {
		return nil, ErrNoUsableWords
	}
	cands, err := buildCandidates(entries, target, c)
	if err != nil {
		return nil, err
	}

	res := &Result{Phrase: phrase, Constraints: c}
	if c.Timeout <= 0 {
		res.Status = StatusTimeout
		return res, nil
	}

	start := time.Now()
	snk := newSink(c.MaxSolutions)
	eng := &engine{
		cands:      cands,
		maxWords:   c.MaxWords,
		minWordLen: c.MinWordLength,
		deadline:   start.Add(c.Timeout),
		sink:       snk,
	}
	eng.run(target)

	res.Solutions = snk.solutions
	res.Status = snk.status
	res.Elapsed = time.Since(start)
	log.Debug().
		Str("phrase", phrase).
		Int("candidates", len(cands.other)).
		Int("solutions", len(res.Solutions)).
		Int("steps", eng.steps).
		Stringer("status", res.Status).
		Dur("elapsed", res.Elapsed).
		Msg("solve finished")
	return res, nil
}
