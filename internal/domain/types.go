package domain

// Document represents a single text loaded into the corpus.
// Text is mutated in place by preprocessing; Tokens is populated by
// tokenization and stays fixed afterwards.
type Document struct {
	Title  string
	Author string
	Text   string
	Tokens []string
}

// Corpus is the ordered collection of all loaded documents plus a
// language tag. It owns its documents exclusively.
type Corpus struct {
	Language  string
	Documents []Document
}

// Titles returns the document titles in corpus order.
func (c *Corpus) Titles() []string {
	out := make([]string, len(c.Documents))
	for i := range c.Documents {
		out[i] = c.Documents[i].Title
	}
	return out
}

// Authors returns the author labels in corpus order, index-aligned
// with Titles.
func (c *Corpus) Authors() []string {
	out := make([]string, len(c.Documents))
	for i := range c.Documents {
		out[i] = c.Documents[i].Author
	}
	return out
}

// SearchResult represents a matching document row with a relevance score.
type SearchResult struct {
	Title  string
	Author string
	Row    int
	Score  float64
}

// TermWeight pairs a vocabulary term with its weight in one document row.
type TermWeight struct {
	Term   string
	Weight float64
}

// Store indexes document rows and supports similarity search.
type Store interface {
	Init(dimension int) error
	Upsert(titles, authors []string, vectors [][]float64) error
	Search(vector []float64, topK int) ([]SearchResult, error)
	Clear() error
}
