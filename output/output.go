// Package output renders solve results for the external writer: plain
// text, one solution per line, words space-separated, in discovery
// order.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordtools/anaphrase/alphabet"
	"github.com/wordtools/anaphrase/solver"
)

// DefaultFileName is used when no descriptive name can be derived.
const DefaultFileName = "anagram_solutions.txt"

// Render writes the solutions to w in discovery order.
func Render(w io.Writer, solutions []solver.Solution) error {
	bw := bufio.NewWriter(w)
	for _, sol := range solutions {
		if _, err := bw.WriteString(sol.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a result to the named file, creating or truncating
// it.
func WriteFile(path string, res *solver.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer f.Close()
	if err := Render(f, res.Solutions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Info().
		Str("path", path).
		Int("solutions", len(res.Solutions)).
		Stringer("status", res.Status).
		Msg("wrote solutions")
	return nil
}

// FileName derives a descriptive output file name from the phrase and
// the solve parameters, e.g. "anagrams_dead_alive_w4_l2.txt".
func FileName(phrase string, c solver.Constraints) string {
	slug := slugify(phrase)
	if slug == "" {
		return DefaultFileName
	}
	return fmt.Sprintf("anagrams_%s_w%d_l%d.txt", slug, c.MaxWords, c.MinWordLength)
}

// slugify folds the phrase and replaces every non-letter run with a
// single underscore.
func slugify(phrase string) string {
	var sb strings.Builder
	pendingSep := false
	for _, r := range alphabet.Fold(phrase) {
		if _, ok := alphabet.Index(r); ok {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return sb.String()
}
