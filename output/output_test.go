package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/wordtools/anaphrase/solver"
)

func TestRender(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := Render(&buf, []solver.Solution{
		{"AN", "AGRAM"},
		{"AGRAM", "AN"},
		{"ANAGRAM"},
	})
	is.NoErr(err)
	is.Equal(buf.String(), "AN AGRAM\nAGRAM AN\nANAGRAM\n")
}

func TestRenderEmpty(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(Render(&buf, nil))
	is.Equal(buf.Len(), 0)
}

func TestWriteFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	res := &solver.Result{
		Solutions: []solver.Solution{{"dead", "alive"}},
		Status:    solver.StatusCompleted,
	}
	is.NoErr(WriteFile(path, res))
	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(data), "dead alive\n")
}

func TestFileName(t *testing.T) {
	is := is.New(t)
	c := solver.DefaultConstraints()
	is.Equal(FileName("Dead, Alive!", c), "anagrams_dead_alive_w4_l2.txt")
	is.Equal(FileName("anagram", c), "anagrams_anagram_w4_l2.txt")
	is.Equal(FileName("?!", c), DefaultFileName)
}
