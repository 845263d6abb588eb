// Package dictionary holds the word index the anagram solver draws
// candidates from. The index is an append-only log: words are only ever
// added, never removed, and load order is preserved because it defines
// the enumeration order of solutions.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/wordtools/anaphrase/alphabet"
)

// Entry is one dictionary word. Matching runs against the folded form
// and the letter multiset; Word keeps the casing the word list supplied
// so output reproduces it.
type Entry struct {
	Word    string
	Folded  string
	Letters alphabet.Multiset
	Length  int
	First   rune
}

// Index is an append-only collection of entries shared by all solves
// issued against the same solver instance. Loads are serialized with a
// write lock; a solve snapshots the entry slice at solve start, so a
// load running concurrently with a solve is visible only to solves
// started afterward.
type Index struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Len returns the number of entries loaded so far.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Snapshot returns the entries present at the time of the call, in load
// order. The returned slice is never mutated by later loads.
func (ix *Index) Snapshot() []*Entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.entries[:len(ix.entries):len(ix.entries)]
}

// Load reads a word list, one word per line, and appends every usable
// word to the index. Empty lines and lines with no letters are skipped.
// Duplicate words across loads are retained: a later load may be a
// deliberate supplementary vocabulary, and dropping repeats would
// change solution multiplicity between runs. Returns the number of
// entries added.
func (ix *Index) Load(r io.Reader) (int, error) {
	var batch []*Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if e := newEntry(strings.TrimSpace(scanner.Text())); e != nil {
			batch = append(batch, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading word list: %w", err)
	}
	ix.append(batch)
	return len(batch), nil
}

// LoadFile loads a word list from a file on disk.
func (ix *Index) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening dictionary %s: %w", path, err)
	}
	defer f.Close()
	n, err := ix.Load(f)
	if err != nil {
		return 0, err
	}
	log.Debug().Str("path", path).Int("words", n).Msg("loaded dictionary file")
	return n, nil
}

// AddWords appends an in-memory word list. Returns the number of
// usable words added.
func (ix *Index) AddWords(words []string) int {
	var batch []*Entry
	for _, w := range words {
		if e := newEntry(w); e != nil {
			batch = append(batch, e)
		}
	}
	ix.append(batch)
	return len(batch)
}

func (ix *Index) append(batch []*Entry) {
	if len(batch) == 0 {
		return
	}
	ix.mu.Lock()
	ix.entries = append(ix.entries, batch...)
	ix.mu.Unlock()
}

// newEntry builds an entry for a raw word, or nil if the word contains
// no letters at all.
func newEntry(word string) *Entry {
	if word == "" {
		return nil
	}
	folded := alphabet.Fold(word)
	letters := alphabet.FromText(folded)
	if letters.IsEmpty() {
		return nil
	}
	first := rune(0)
	for _, r := range folded {
		if _, ok := alphabet.Index(r); ok {
			first = r
			break
		}
	}
	return &Entry{
		Word:    word,
		Folded:  folded,
		Letters: letters,
		Length:  letters.Total(),
		First:   first,
	}
}
