package service

import (
	"fmt"
	"sort"
	"strings"

	"stylo/internal/artifact"
	"stylo/internal/corpus"
	"stylo/internal/domain"
)

// Browser answers similarity queries against a loaded artifact through a
// store backend.
type Browser struct {
	art   *artifact.Artifact
	store domain.Store
}

// NewBrowser indexes the artifact rows into the store.
func NewBrowser(art *artifact.Artifact, store domain.Store) (*Browser, error) {
	if err := store.Init(len(art.Features)); err != nil {
		return nil, err
	}
	if err := store.Clear(); err != nil {
		return nil, err
	}
	if err := store.Upsert(art.Titles, art.Authors, art.Matrix); err != nil {
		return nil, err
	}
	return &Browser{art: art, store: store}, nil
}

// Headline summarizes the indexed artifact for display.
func (b *Browser) Headline() string {
	labels, _ := b.art.AuthorIndex()
	return fmt.Sprintf("%d documents, %d authors, %d features",
		len(b.art.Titles), len(labels), len(b.art.Features))
}

// Query vectorizes free text over the artifact's feature set and returns
// the nearest document rows.
func (b *Browser) Query(query string, topK int) ([]domain.SearchResult, error) {
	return b.store.Search(b.embedQuery(query), topK)
}

// TopTerms returns the k highest-weighted vocabulary terms of one row.
func (b *Browser) TopTerms(row, k int) []domain.TermWeight {
	if row < 0 || row >= len(b.art.Matrix) {
		return nil
	}
	var terms []domain.TermWeight
	for i, w := range b.art.Matrix[row] {
		if w > 0 {
			terms = append(terms, domain.TermWeight{Term: b.art.Features[i], Weight: w})
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return terms[i].Term < terms[j].Term
	})
	if k > 0 && k < len(terms) {
		terms = terms[:k]
	}
	return terms
}

// embedQuery counts feature occurrences in the normalized query. Features
// are matched on token boundaries, which covers word n-gram vocabularies
// exactly; char n-gram features match only when they form whole tokens.
func (b *Browser) embedQuery(query string) []float64 {
	row := make([]float64, len(b.art.Features))
	normalized := corpus.NormalizeText(query)
	if normalized == "" {
		return row
	}
	padded := " " + normalized + " "
	for i, feat := range b.art.Features {
		if n := strings.Count(padded, " "+feat+" "); n > 0 {
			row[i] = float64(n)
		}
	}
	return row
}
