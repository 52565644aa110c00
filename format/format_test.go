package format_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/inkwell/ribbon"
	"github.com/inkwell/ribbon/format"
)

type label int

func upperParse(src []byte) (ribbon.Doc[label], error) {
	return ribbon.Text[label](strings.ToUpper(string(src))), nil
}

func TestReaderWritesParsedAndPrintedOutput(t *testing.T) {
	r := strings.NewReader("hello")
	var w strings.Builder

	err := format.Reader(r, &w, ribbon.PlainText[label](), ribbon.TwoSpaces(), upperParse)
	require.NoError(t, err)
	assert.EqualValues(t, w.String(), "HELLO")
}

func TestFileRewritesInPlacePreservingMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	err := format.File(path, []byte("hello"), ribbon.PlainText[label](), ribbon.TwoSpaces(), upperParse)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.EqualValues(t, string(got), "HELLO")

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, fi.Mode().Perm(), os.FileMode(0o644))
}

func TestFileReturnsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	failParse := func(src []byte) (ribbon.Doc[label], error) {
		return ribbon.Doc[label]{}, errors.New("invalid input")
	}

	err := format.File(path, []byte("hello"), ribbon.PlainText[label](), ribbon.TwoSpaces(), failParse)
	require.NotNilf(t, err, "expected an error from a failing parse")
}

func TestDirFormatsMatchingFilesOnly(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "a.txt")
	skip := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(keep, []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(skip, []byte("hi"), 0o644))

	err := format.Dir(dir, []string{".txt"}, ribbon.PlainText[label](), ribbon.TwoSpaces(), upperParse)
	require.NoError(t, err)

	gotKeep, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.EqualValues(t, string(gotKeep), "HI")

	gotSkip, err := os.ReadFile(skip)
	require.NoError(t, err)
	assert.EqualValues(t, string(gotSkip), "hi")
}
