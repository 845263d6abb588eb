package dictionary

import (
	_ "embed"
	"strings"
)

// A small UKACD-style sample list, bundled so the solver works out of
// the box. Real deployments point the solver at a full ~200k-word list
// via the dictionary path instead.
//
//go:embed default.txt
var defaultWordList string

// Default builds an index from the bundled word list.
func Default() *Index {
	ix := NewIndex()
	// the embedded list is well-formed; Load only fails on reader errors
	_, _ = ix.Load(strings.NewReader(defaultWordList))
	return ix
}
