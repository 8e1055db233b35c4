package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylo/internal/corpus"
	"stylo/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "smith_a.txt", "The cat sat on the mat.")
	writeFile(t, dir, "jones_b.txt", "The dog sat on the log.")
	writeFile(t, dir, "notes.md", "ignored")

	c, err := corpus.LoadDirectory(dir, "en")
	require.NoError(t, err)
	assert.Equal(t, "en", c.Language)
	require.Len(t, c.Documents, 2)

	// Lexical filename order: jones_b.txt before smith_a.txt
	assert.Equal(t, []string{"b", "a"}, c.Titles())
	assert.Equal(t, []string{"jones", "smith"}, c.Authors())
	assert.Equal(t, "The dog sat on the log.", c.Documents[0].Text)
}

func TestLoadDirectoryWithoutAuthorConvention(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.txt", "some text")

	c, err := corpus.LoadDirectory(dir, "en")
	require.NoError(t, err)
	require.Len(t, c.Documents, 1)
	assert.Equal(t, "unknown", c.Documents[0].Author)
	assert.Equal(t, "plain", c.Documents[0].Title)
}

func TestLoadDirectoryMissing(t *testing.T) {
	_, err := corpus.LoadDirectory(filepath.Join(t.TempDir(), "absent"), "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestLoadDirectoryEmpty(t *testing.T) {
	_, err := corpus.LoadDirectory(t.TempDir(), "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
}
