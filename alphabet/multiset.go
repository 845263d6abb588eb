package alphabet

import (
	"strings"

	"golang.org/x/text/cases"
)

// NumLetters is the number of letters in the unaccented Latin alphabet.
const NumLetters = 26

// Multiset is a per-letter occurrence count. It is the arithmetic
// primitive behind every feasibility test in the solver: a word can be
// spelled from a budget of letters iff its multiset is contained in the
// budget's.
type Multiset [NumLetters]int

// Index returns the 0-25 slot for a letter rune, folding case. The
// second return value is false for anything outside a-z/A-Z.
func Index(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	}
	return 0, false
}

// Letter is the inverse of Index; it returns the lowercase letter for
// a slot.
func Letter(i int) rune {
	return rune('a' + i)
}

// Fold case-folds a string for matching. Folding, not lowercasing, so
// that dictionary files with odd casings compare consistently.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// FromText counts the letters of s, ignoring whitespace, punctuation
// and anything else that is not an unaccented Latin letter. Case is
// folded.
func FromText(s string) Multiset {
	var m Multiset
	for _, r := range Fold(s) {
		if i, ok := Index(r); ok {
			m[i]++
		}
	}
	return m
}

// Contains reports whether every count of sub fits within m.
func (m Multiset) Contains(sub Multiset) bool {
	for i := 0; i < NumLetters; i++ {
		if sub[i] > m[i] {
			return false
		}
	}
	return true
}

// Subtract returns m minus sub, component-wise. Only valid when
// m.Contains(sub) holds; callers guarantee that by construction.
func (m Multiset) Subtract(sub Multiset) Multiset {
	for i := 0; i < NumLetters; i++ {
		m[i] -= sub[i]
	}
	return m
}

// Plus returns the component-wise sum of m and o.
func (m Multiset) Plus(o Multiset) Multiset {
	for i := 0; i < NumLetters; i++ {
		m[i] += o[i]
	}
	return m
}

// IsEmpty reports whether all counts are zero.
func (m Multiset) IsEmpty() bool {
	for i := 0; i < NumLetters; i++ {
		if m[i] != 0 {
			return false
		}
	}
	return true
}

// Total is the sum of all counts.
func (m Multiset) Total() int {
	n := 0
	for i := 0; i < NumLetters; i++ {
		n += m[i]
	}
	return n
}

// Has reports whether the letter r has a nonzero count.
func (m Multiset) Has(r rune) bool {
	if i, ok := Index(r); ok {
		return m[i] > 0
	}
	return false
}

// Take removes one occurrence of the letter r. It does not check that
// the letter is present.
func (m *Multiset) Take(r rune) {
	if i, ok := Index(r); ok {
		m[i]--
	}
}

// Add adds one occurrence of the letter r.
func (m *Multiset) Add(r rune) {
	if i, ok := Index(r); ok {
		m[i]++
	}
}

// String returns the counted letters in alphabetical order, repeats
// included. Debug/test helper.
func (m Multiset) String() string {
	var sb strings.Builder
	sb.Grow(m.Total())
	for i := 0; i < NumLetters; i++ {
		for j := 0; j < m[i]; j++ {
			sb.WriteRune(Letter(i))
		}
	}
	return sb.String()
}
