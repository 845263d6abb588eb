package solver

import (
	"github.com/samber/lo"

	"github.com/wordtools/anaphrase/alphabet"
	"github.com/wordtools/anaphrase/dictionary"
)

// candidates holds the two depth-independent candidate lists the search
// runs over, in dictionary load order. first applies at recursion depth
// zero, other everywhere else; they differ only when MustStartWith is
// set.
type candidates struct {
	first []*dictionary.Entry
	other []*dictionary.Entry
}

// buildCandidates derives the admissible subset of the dictionary for
// one solve. Starting-letter rules layer as follows: must-not and
// can-only-ever apply to every position and are folded into the base;
// must-start further restricts the first position only. Entries whose
// letters cannot fit the full target are dropped here as a cheap
// pre-filter; the shrinking budget is re-checked at every depth during
// search.
func buildCandidates(entries []*dictionary.Entry, target alphabet.Multiset, c Constraints) (candidates, error) {
	canOnly := parseLetterSet(c.CanOnlyEverStartWith)
	mustNot := parseLetterSet(c.MustNotStartWith)
	mustStart := parseLetterSet(c.MustStartWith)

	base := lo.Filter(entries, func(e *dictionary.Entry, _ int) bool {
		if e.Length < c.MinWordLength {
			return false
		}
		if mustNot.present && mustNot.has(e.First) {
			return false
		}
		if canOnly.present && !canOnly.has(e.First) {
			return false
		}
		return true
	})
	if len(base) == 0 {
		return candidates{}, ErrNoUsableWords
	}

	feasible := lo.Filter(base, func(e *dictionary.Entry, _ int) bool {
		return target.Contains(e.Letters)
	})

	first := feasible
	if mustStart.present {
		first = lo.Filter(feasible, func(e *dictionary.Entry, _ int) bool {
			return mustStart.has(e.First)
		})
	}
	return candidates{first: first, other: feasible}, nil
}
