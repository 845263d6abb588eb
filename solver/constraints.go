package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/wordtools/anaphrase/alphabet"
)

var (
	// ErrInvalidPhrase means the phrase contains no letters at all.
	ErrInvalidPhrase = errors.New("phrase contains no letters")
	// ErrInvalidConstraint means the solve parameters are contradictory
	// or out of range.
	ErrInvalidConstraint = errors.New("invalid constraint")
	// ErrNoUsableWords means the dictionary is empty, or the length and
	// starting-letter rules exclude every word in it.
	ErrNoUsableWords = errors.New("no usable words in dictionary")
)

// Constraints are the parameters of one solve. They are read-only for
// the duration of the solve. Start from DefaultConstraints and override
// fields as needed; a zero Constraints fails validation.
type Constraints struct {
	// MustStartWith lists letters the first word of a solution must
	// start with. Empty means unconstrained. Later words are not
	// affected by this rule.
	MustStartWith string
	// CanOnlyEverStartWith restricts every word in every position to
	// starting with one of these letters. Empty means unconstrained.
	CanOnlyEverStartWith string
	// MustNotStartWith forbids any word, in any position, from starting
	// with one of these letters.
	MustNotStartWith string
	// MaxWords is the upper bound on words per solution. A solution may
	// use fewer.
	MaxWords int
	// MinWordLength is the lower bound on each word's letter count.
	MinWordLength int
	// Timeout is the wall-clock budget for the search. A non-positive
	// timeout stops the search immediately with StatusTimeout.
	Timeout time.Duration
	// MaxSolutions caps how many solutions are collected.
	MaxSolutions int
}

// DefaultConstraints returns the documented solve defaults.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxWords:      4,
		MinWordLength: 2,
		Timeout:       30 * time.Second,
		MaxSolutions:  20000,
	}
}

// letterSet is a membership bitmap over the 26 letter slots.
type letterSet struct {
	set     [alphabet.NumLetters]bool
	present bool
}

// parseLetterSet folds s and collects its letters; non-letters are
// ignored, the same normalization FromText applies to phrases.
func parseLetterSet(s string) letterSet {
	var ls letterSet
	for _, r := range alphabet.Fold(s) {
		if i, ok := alphabet.Index(r); ok {
			ls.set[i] = true
			ls.present = true
		}
	}
	return ls
}

func (ls letterSet) has(r rune) bool {
	if i, ok := alphabet.Index(r); ok {
		return ls.set[i]
	}
	return false
}

func (ls letterSet) intersects(o letterSet) bool {
	for i := range ls.set {
		if ls.set[i] && o.set[i] {
			return true
		}
	}
	return false
}

// validate surfaces contradictory or out-of-range parameters before
// any search begins.
func (c Constraints) validate() error {
	if c.MaxWords <= 0 {
		return fmt.Errorf("%w: max words must be positive, got %d", ErrInvalidConstraint, c.MaxWords)
	}
	if c.MinWordLength <= 0 {
		return fmt.Errorf("%w: min word length must be positive, got %d", ErrInvalidConstraint, c.MinWordLength)
	}
	if c.MaxSolutions <= 0 {
		return fmt.Errorf("%w: max solutions must be positive, got %d", ErrInvalidConstraint, c.MaxSolutions)
	}
	mustStart := parseLetterSet(c.MustStartWith)
	canOnly := parseLetterSet(c.CanOnlyEverStartWith)
	mustNot := parseLetterSet(c.MustNotStartWith)
	if mustStart.intersects(mustNot) {
		return fmt.Errorf("%w: a letter appears in both must-start-with and must-not-start-with", ErrInvalidConstraint)
	}
	if canOnly.intersects(mustNot) {
		return fmt.Errorf("%w: a letter appears in both can-only-ever-start-with and must-not-start-with", ErrInvalidConstraint)
	}
	if mustStart.present && canOnly.present && !mustStart.intersects(canOnly) {
		return fmt.Errorf("%w: must-start-with letters are all excluded by can-only-ever-start-with", ErrInvalidConstraint)
	}
	return nil
}
