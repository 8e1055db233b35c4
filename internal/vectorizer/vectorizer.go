package vectorizer

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"stylo/internal/domain"
)

// Supported n-gram models and vector spaces.
const (
	NgramWord = "word"
	NgramChar = "char"

	SpaceTF     = "tf"
	SpaceTFIDF  = "tfidf"
	SpaceBinary = "binary"
)

// Params configure the vectorizer. MFI caps the vocabulary at the K most
// frequent terms corpus-wide; NgramSize is the n-gram order (1 = unigrams).
type Params struct {
	MFI         int
	NgramType   string
	NgramSize   int
	VectorSpace string
}

// TermVectorizer builds a most-frequent-items vocabulary over a corpus
// and transforms documents into rows over that vocabulary.
//
// The vocabulary ranks terms by corpus-wide frequency descending; ties at
// equal frequency break alphabetically ascending, so repeated runs over an
// unchanged corpus produce identical feature orders and matrices.
type TermVectorizer struct {
	params     Params
	vocabulary map[string]int
	features   []string
	idf        []float64
	fitted     bool
}

// New validates params and returns an unfitted vectorizer.
func New(params Params) (*TermVectorizer, error) {
	if params.NgramType == "" {
		params.NgramType = NgramWord
	}
	if params.NgramType != NgramWord && params.NgramType != NgramChar {
		return nil, fmt.Errorf("unknown ngram type: %s", params.NgramType)
	}
	if params.VectorSpace == "" {
		params.VectorSpace = SpaceTF
	}
	switch params.VectorSpace {
	case SpaceTF, SpaceTFIDF, SpaceBinary:
	default:
		return nil, fmt.Errorf("unknown vector space: %s", params.VectorSpace)
	}
	if params.NgramSize < 1 {
		params.NgramSize = 1
	}
	return &TermVectorizer{params: params}, nil
}

// Fit builds the vocabulary and, for the tfidf space, document
// frequencies from the tokenized corpus.
func (v *TermVectorizer) Fit(c *domain.Corpus) error {
	counts := make(map[string]int)
	df := make(map[string]int)
	for i := range c.Documents {
		terms := v.terms(c.Documents[i])
		seen := make(map[string]struct{})
		for _, t := range terms {
			counts[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}
	if len(counts) == 0 {
		return errors.New("no terms in corpus; tokenize before vectorizing")
	}

	ranked := make([]string, 0, len(counts))
	for t := range counts {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	k := v.params.MFI
	if k <= 0 || k > len(ranked) {
		k = len(ranked)
	}
	v.features = ranked[:k]
	v.vocabulary = make(map[string]int, k)
	for i, t := range v.features {
		v.vocabulary[t] = i
	}
	if v.params.VectorSpace == SpaceTFIDF {
		v.idf = make([]float64, k)
		n := float64(len(c.Documents))
		for i, t := range v.features {
			// Smoothed IDF
			v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1.0
		}
	}
	v.fitted = true
	return nil
}

// Transform converts one document into a row over the fitted vocabulary.
// A document with no terms yields an all-zero row.
func (v *TermVectorizer) Transform(d domain.Document) []float64 {
	row := make([]float64, len(v.features))
	if !v.fitted {
		return row
	}
	terms := v.terms(d)
	if len(terms) == 0 {
		return row
	}
	if v.params.VectorSpace == SpaceBinary {
		for _, t := range terms {
			if idx, ok := v.vocabulary[t]; ok {
				row[idx] = 1.0
			}
		}
		return row
	}
	tf := make(map[int]int)
	for _, t := range terms {
		if idx, ok := v.vocabulary[t]; ok {
			tf[idx]++
		}
	}
	total := float64(len(terms))
	for idx, count := range tf {
		row[idx] = float64(count) / total
		if v.params.VectorSpace == SpaceTFIDF {
			row[idx] *= v.idf[idx]
		}
	}
	return row
}

// FitTransform fits the vocabulary and returns one row per document in
// corpus order.
func (v *TermVectorizer) FitTransform(c *domain.Corpus) ([][]float64, error) {
	if err := v.Fit(c); err != nil {
		return nil, err
	}
	rows := make([][]float64, len(c.Documents))
	for i := range c.Documents {
		rows[i] = v.Transform(c.Documents[i])
	}
	return rows, nil
}

// FeatureNames returns the fitted vocabulary in feature index order.
func (v *TermVectorizer) FeatureNames() []string { return v.features }

func (v *TermVectorizer) terms(d domain.Document) []string {
	n := v.params.NgramSize
	if v.params.NgramType == NgramChar {
		runes := []rune(d.Text)
		if len(runes) < n {
			return nil
		}
		out := make([]string, 0, len(runes)-n+1)
		for i := 0; i+n <= len(runes); i++ {
			out = append(out, string(runes[i:i+n]))
		}
		return out
	}
	if len(d.Tokens) < n {
		return nil
	}
	if n == 1 {
		return d.Tokens
	}
	out := make([]string, 0, len(d.Tokens)-n+1)
	for i := 0; i+n <= len(d.Tokens); i++ {
		out = append(out, strings.Join(d.Tokens[i:i+n], " "))
	}
	return out
}
