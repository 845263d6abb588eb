package solver

import (
	"time"

	"github.com/wordtools/anaphrase/alphabet"
	"github.com/wordtools/anaphrase/dictionary"
)

// deadlineCheckInterval bounds how many expansion steps may pass
// between wall-clock polls.
const deadlineCheckInterval = 256

// engine is the backtracking enumerator. One engine serves one solve;
// it is not reused.
type engine struct {
	cands      candidates
	maxWords   int
	minWordLen int
	deadline   time.Time
	sink       *sink
	steps      int
}

// run explores the search space rooted at the full target multiset.
func (e *engine) run(target alphabet.Multiset) {
	path := make([]*dictionary.Entry, 0, e.maxWords)
	e.expand(target, path)
}

// timedOut polls the wall clock every deadlineCheckInterval steps. The
// step counter advances once per candidate considered, so latency
// between polls stays bounded even on wide, shallow search levels.
func (e *engine) timedOut() bool {
	e.steps++
	if e.steps%deadlineCheckInterval != 1 {
		return false
	}
	if time.Now().Before(e.deadline) {
		return false
	}
	e.sink.status = StatusTimeout
	return true
}

// expand tries every candidate that fits the remaining budget at the
// current depth, in dictionary load order. Distinct orderings of the
// same words are distinct solutions; no deduplication happens here.
// Returns false when the solve must stop entirely (timeout or cap).
func (e *engine) expand(budget alphabet.Multiset, path []*dictionary.Entry) bool {
	cands := e.cands.other
	if len(path) == 0 {
		cands = e.cands.first
	}
	total := budget.Total()
	for _, w := range cands {
		if e.timedOut() {
			return false
		}
		if w.Length > total || !budget.Contains(w.Letters) {
			continue
		}
		rest := budget.Subtract(w.Letters)
		path = append(path, w)
		switch {
		case rest.IsEmpty():
			if !e.sink.add(path) {
				return false
			}
		case len(path) < e.maxWords && rest.Total() >= e.minWordLen:
			if !e.expand(rest, path) {
				return false
			}
		}
		// dead end or depth exhausted: backtrack without emitting
		path = path[:len(path)-1]
	}
	return true
}
