package vectorizer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylo/internal/domain"
	"stylo/internal/vectorizer"
)

func tokenDoc(title string, tokens ...string) domain.Document {
	return domain.Document{Title: title, Tokens: tokens}
}

func TestFitTransformTF(t *testing.T) {
	c := &domain.Corpus{Documents: []domain.Document{
		tokenDoc("a", "apple", "apple", "banana"),
		tokenDoc("b", "apple", "cherry", "cherry"),
	}}
	v, err := vectorizer.New(vectorizer.Params{MFI: 100, NgramType: "word", NgramSize: 1, VectorSpace: "tf"})
	require.NoError(t, err)

	matrix, err := v.FitTransform(c)
	require.NoError(t, err)
	require.Len(t, matrix, 2)

	// apple: 3, cherry: 2, banana: 1
	assert.Equal(t, []string{"apple", "cherry", "banana"}, v.FeatureNames())
	assert.InDelta(t, 2.0/3.0, matrix[0][0], 1e-12)
	assert.InDelta(t, 0.0, matrix[0][1], 1e-12)
	assert.InDelta(t, 1.0/3.0, matrix[0][2], 1e-12)
	assert.InDelta(t, 1.0/3.0, matrix[1][0], 1e-12)
	assert.InDelta(t, 2.0/3.0, matrix[1][1], 1e-12)
}

func TestMFICutoffAndTieBreak(t *testing.T) {
	// zebra and ant tie at 2 occurrences; ant wins the last slot
	// alphabetically.
	c := &domain.Corpus{Documents: []domain.Document{
		tokenDoc("a", "mat", "mat", "mat", "zebra", "ant"),
		tokenDoc("b", "zebra", "ant"),
	}}
	v, err := vectorizer.New(vectorizer.Params{MFI: 2, VectorSpace: "tf"})
	require.NoError(t, err)

	_, err = v.FitTransform(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"mat", "ant"}, v.FeatureNames())
}

func TestBinarySpace(t *testing.T) {
	c := &domain.Corpus{Documents: []domain.Document{
		tokenDoc("a", "apple", "apple", "banana"),
	}}
	v, err := vectorizer.New(vectorizer.Params{MFI: 10, VectorSpace: "binary"})
	require.NoError(t, err)

	matrix, err := v.FitTransform(c)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, matrix[0])
}

func TestTFIDFSpace(t *testing.T) {
	c := &domain.Corpus{Documents: []domain.Document{
		tokenDoc("a", "apple", "banana"),
		tokenDoc("b", "apple", "cherry"),
	}}
	v, err := vectorizer.New(vectorizer.Params{MFI: 10, VectorSpace: "tfidf"})
	require.NoError(t, err)

	matrix, err := v.FitTransform(c)
	require.NoError(t, err)

	idxApple := indexOf(t, v.FeatureNames(), "apple")
	idxBanana := indexOf(t, v.FeatureNames(), "banana")
	// apple df=2: idf = ln(3/3)+1 = 1; banana df=1: idf = ln(3/2)+1
	assert.InDelta(t, 0.5, matrix[0][idxApple], 1e-12)
	assert.InDelta(t, 0.5*(math.Log(1.5)+1), matrix[0][idxBanana], 1e-12)
}

func TestCharNgrams(t *testing.T) {
	c := &domain.Corpus{Documents: []domain.Document{
		{Title: "a", Text: "abab"},
	}}
	v, err := vectorizer.New(vectorizer.Params{MFI: 10, NgramType: "char", NgramSize: 2, VectorSpace: "tf"})
	require.NoError(t, err)

	matrix, err := v.FitTransform(c)
	require.NoError(t, err)
	// terms: ab, ba, ab
	assert.Equal(t, []string{"ab", "ba"}, v.FeatureNames())
	assert.InDelta(t, 2.0/3.0, matrix[0][0], 1e-12)
	assert.InDelta(t, 1.0/3.0, matrix[0][1], 1e-12)
}

func TestWordBigrams(t *testing.T) {
	c := &domain.Corpus{Documents: []domain.Document{
		tokenDoc("a", "the", "cat", "sat"),
	}}
	v, err := vectorizer.New(vectorizer.Params{MFI: 10, NgramType: "word", NgramSize: 2, VectorSpace: "binary"})
	require.NoError(t, err)

	_, err = v.FitTransform(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat sat", "the cat"}, v.FeatureNames())
}

func TestEmptyDocumentRow(t *testing.T) {
	c := &domain.Corpus{Documents: []domain.Document{
		tokenDoc("a", "apple"),
		tokenDoc("empty"),
	}}
	v, err := vectorizer.New(vectorizer.Params{MFI: 10, VectorSpace: "tf"})
	require.NoError(t, err)

	matrix, err := v.FitTransform(c)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, matrix[1])
}

func TestEmptyCorpusFails(t *testing.T) {
	v, err := vectorizer.New(vectorizer.Params{MFI: 10})
	require.NoError(t, err)
	_, err = v.FitTransform(&domain.Corpus{})
	assert.Error(t, err)
}

func TestInvalidParams(t *testing.T) {
	_, err := vectorizer.New(vectorizer.Params{NgramType: "sentence"})
	assert.Error(t, err)
	_, err = vectorizer.New(vectorizer.Params{VectorSpace: "hashing"})
	assert.Error(t, err)
}

func TestDeterministicRefit(t *testing.T) {
	c := &domain.Corpus{Documents: []domain.Document{
		tokenDoc("a", "pear", "plum", "fig", "fig"),
		tokenDoc("b", "plum", "pear", "quince"),
	}}
	first, err := vectorizer.New(vectorizer.Params{MFI: 3, VectorSpace: "tf"})
	require.NoError(t, err)
	second, err := vectorizer.New(vectorizer.Params{MFI: 3, VectorSpace: "tf"})
	require.NoError(t, err)

	m1, err := first.FitTransform(c)
	require.NoError(t, err)
	m2, err := second.FitTransform(c)
	require.NoError(t, err)

	assert.Equal(t, first.FeatureNames(), second.FeatureNames())
	assert.Equal(t, m1, m2)
}

func indexOf(t *testing.T, names []string, term string) int {
	t.Helper()
	for i, n := range names {
		if n == term {
			return i
		}
	}
	t.Fatalf("term %q not in features %v", term, names)
	return -1
}
