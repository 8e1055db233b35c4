package artifact

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"stylo/internal/domain"
)

// Artifact is the serialized output of one pipeline run: document titles,
// author labels, vocabulary terms and the dense document-term matrix.
// Titles, Authors and Matrix rows are index-aligned; every row has
// len(Features) columns. Written once, never updated.
type Artifact struct {
	Titles   []string
	Authors  []string
	Features []string
	Matrix   [][]float64
}

// Validate checks the alignment invariant.
func (a *Artifact) Validate() error {
	if len(a.Titles) != len(a.Matrix) || len(a.Authors) != len(a.Matrix) {
		return fmt.Errorf("misaligned artifact: %d titles, %d authors, %d rows",
			len(a.Titles), len(a.Authors), len(a.Matrix))
	}
	for i, row := range a.Matrix {
		if len(row) != len(a.Features) {
			return fmt.Errorf("row %d has %d columns, want %d", i, len(row), len(a.Features))
		}
	}
	return nil
}

// AuthorIndex returns the distinct author labels in first-appearance
// order and, for each row, its index into that list.
func (a *Artifact) AuthorIndex() ([]string, []int) {
	var labels []string
	seen := make(map[string]int)
	ints := make([]int, len(a.Authors))
	for i, author := range a.Authors {
		idx, ok := seen[author]
		if !ok {
			idx = len(labels)
			seen[author] = idx
			labels = append(labels, author)
		}
		ints[i] = idx
	}
	return labels, ints
}

// Save writes the artifact to path with gob encoding, overwriting any
// existing file. Parent directories are created as needed.
func Save(path string, a *Artifact) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialize, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrSerialize, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialize, err)
	}
	if err := gob.NewEncoder(f).Encode(a); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode: %v", domain.ErrSerialize, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialize, err)
	}
	return nil
}

// Load reads an artifact back from path and re-validates it.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSerialize, err)
	}
	defer f.Close()
	var a Artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrSerialize, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSerialize, err)
	}
	return &a, nil
}
