package store

import (
	"errors"
	"math"
	"sort"
	"sync"

	"stylo/internal/domain"
)

// MemoryStore is a brute-force cosine-similarity store over document rows.
type MemoryStore struct {
	mu        sync.RWMutex
	dimension int
	titles    []string
	authors   []string
	vectors   [][]float64
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.titles = nil
	s.authors = nil
	s.vectors = nil
	return nil
}

func (s *MemoryStore) Upsert(titles, authors []string, vectors [][]float64) error {
	if len(titles) != len(vectors) || len(authors) != len(vectors) {
		return errors.New("titles, authors and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	s.titles = append(s.titles, titles...)
	s.authors = append(s.authors, authors...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

func (s *MemoryStore) Search(vector []float64, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 {
		topK = 5
	}
	results := make([]domain.SearchResult, len(s.vectors))
	for i := range s.vectors {
		results[i] = domain.SearchResult{
			Title:  s.titles[i],
			Author: s.authors[i],
			Row:    i,
			Score:  CosineSimilarity(s.vectors[i], vector),
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Row < results[j].Row
	})
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles = nil
	s.authors = nil
	s.vectors = nil
	return nil
}

// CosineSimilarity calculates the cosine similarity between two vectors.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
