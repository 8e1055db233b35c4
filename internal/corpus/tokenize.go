package corpus

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"stylo/internal/domain"
)

var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Tokenize splits every document's normalized text into word tokens.
// Each document keeps at most maxSize tokens; a maxSize of 0 means
// unbounded. A document with empty text ends up with an empty token
// sequence, not an error.
func Tokenize(c *domain.Corpus, maxSize int) error {
	for i := range c.Documents {
		text := c.Documents[i].Text
		if !utf8.ValidString(text) {
			return fmt.Errorf("%w: document %q is not valid UTF-8", domain.ErrTokenize, c.Documents[i].Title)
		}
		tokens := wordPattern.FindAllString(text, -1)
		if maxSize > 0 && len(tokens) > maxSize {
			tokens = tokens[:maxSize]
		}
		c.Documents[i].Tokens = tokens
	}
	return nil
}
