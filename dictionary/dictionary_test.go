package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordtools/anaphrase/alphabet"
)

func TestLoad(t *testing.T) {
	ix := NewIndex()
	n, err := ix.Load(strings.NewReader("AN\nAGRAM\n\n   \nAnagram\n"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, ix.Len())

	entries := ix.Snapshot()
	// load order preserved, original casing kept, matching form folded
	assert.Equal(t, "AN", entries[0].Word)
	assert.Equal(t, "an", entries[0].Folded)
	assert.Equal(t, "Anagram", entries[2].Word)
	assert.Equal(t, "anagram", entries[2].Folded)
	assert.Equal(t, alphabet.FromText("anagram"), entries[2].Letters)
	assert.Equal(t, 7, entries[2].Length)
	assert.Equal(t, 'a', entries[2].First)
}

func TestLoadSkipsLetterlessLines(t *testing.T) {
	ix := NewIndex()
	n, err := ix.Load(strings.NewReader("---\n123\ncat's-paw\n"))
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	e := ix.Snapshot()[0]
	assert.Equal(t, "cat's-paw", e.Word)
	assert.Equal(t, 7, e.Length)
	assert.Equal(t, 'c', e.First)
}

func TestDuplicatesRetainedAcrossLoads(t *testing.T) {
	ix := NewIndex()
	ix.AddWords([]string{"gram", "ran"})
	ix.AddWords([]string{"gram"})
	assert.Equal(t, 3, ix.Len())
	entries := ix.Snapshot()
	assert.Equal(t, "gram", entries[0].Folded)
	assert.Equal(t, "gram", entries[2].Folded)
}

func TestSnapshotUnaffectedByLaterLoads(t *testing.T) {
	ix := NewIndex()
	ix.AddWords([]string{"one", "two"})
	snap := ix.Snapshot()
	ix.AddWords([]string{"three"})
	assert.Len(t, snap, 2)
	assert.Equal(t, 3, ix.Len())
	// appending to the snapshot must not alias the index's backing array
	snap = append(snap, snap[0])
	assert.Equal(t, "three", ix.Snapshot()[2].Folded)
}

func TestDefaultList(t *testing.T) {
	ix := Default()
	assert.Greater(t, ix.Len(), 1000)
	for _, e := range ix.Snapshot() {
		assert.NotZero(t, e.Length)
		assert.NotZero(t, e.First)
	}
}
