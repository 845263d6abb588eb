package solver

import (
	"strings"

	"github.com/wordtools/anaphrase/dictionary"
)

// Status is the reason a solve stopped. The three values are mutually
// exclusive terminal conditions of one solve invocation.
type Status int

const (
	// StatusCompleted means the search space was exhausted.
	StatusCompleted Status = iota
	// StatusTimeout means the wall-clock budget ran out; the collected
	// solutions are a valid partial result.
	StatusTimeout
	// StatusMaxSolutions means the solution cap was reached.
	StatusMaxSolutions
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusTimeout:
		return "timeout"
	case StatusMaxSolutions:
		return "max_solutions_reached"
	}
	return "unknown"
}

// Solution is an ordered sequence of dictionary words whose combined
// letters exactly equal the target phrase's.
type Solution []string

func (s Solution) String() string {
	return strings.Join(s, " ")
}

// sink collects solutions in discovery order and tracks the count
// against the solution cap.
type sink struct {
	solutions []Solution
	max       int
	status    Status
}

func newSink(max int) *sink {
	return &sink{max: max}
}

// add records the current search path as a solution. It returns false
// when the cap has been reached and the search must stop.
func (k *sink) add(path []*dictionary.Entry) bool {
	words := make(Solution, len(path))
	for i, e := range path {
		words[i] = e.Word
	}
	k.solutions = append(k.solutions, words)
	if len(k.solutions) >= k.max {
		k.status = StatusMaxSolutions
		return false
	}
	return true
}
