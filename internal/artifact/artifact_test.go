package artifact_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylo/internal/artifact"
	"stylo/internal/domain"
)

func sample() *artifact.Artifact {
	return &artifact.Artifact{
		Titles:   []string{"emma", "persuasion", "dracula"},
		Authors:  []string{"austen", "austen", "stoker"},
		Features: []string{"the", "of"},
		Matrix: [][]float64{
			{0.5, 0.25},
			{0.4, 0.3},
			{0.6, 0.1},
		},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "corpus.bin")
	a := sample()

	require.NoError(t, artifact.Save(path, a))
	loaded, err := artifact.Load(path)
	require.NoError(t, err)
	assert.Equal(t, a, loaded)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.bin")
	a := sample()
	require.NoError(t, artifact.Save(path, a))

	a.Titles[0] = "northanger"
	require.NoError(t, artifact.Save(path, a))
	loaded, err := artifact.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "northanger", loaded.Titles[0])
}

func TestSaveRejectsMisalignedArtifact(t *testing.T) {
	a := sample()
	a.Authors = a.Authors[:1]

	err := artifact.Save(filepath.Join(t.TempDir(), "corpus.bin"), a)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSerialize)
}

func TestSaveRejectsRaggedMatrix(t *testing.T) {
	a := sample()
	a.Matrix[1] = []float64{0.4}

	err := artifact.Save(filepath.Join(t.TempDir(), "corpus.bin"), a)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSerialize)
}

func TestSaveUnwritablePath(t *testing.T) {
	// The temp dir itself is not a writable file target.
	err := artifact.Save(t.TempDir(), sample())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSerialize)
}

func TestLoadMissing(t *testing.T) {
	_, err := artifact.Load(filepath.Join(t.TempDir(), "absent.bin"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSerialize)
}

func TestAuthorIndex(t *testing.T) {
	labels, ints := sample().AuthorIndex()
	assert.Equal(t, []string{"austen", "stoker"}, labels)
	assert.Equal(t, []int{0, 0, 1}, ints)
}
