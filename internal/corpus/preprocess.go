package corpus

import (
	"regexp"
	"strings"

	"stylo/internal/domain"
)

var nonLetterPattern = regexp.MustCompile(`[^\p{L}\s]+`)

// Preprocess normalizes every document's text in place: case folding and
// reduction to letter runs separated by single spaces. Punctuation and
// digits are stripped.
func Preprocess(c *domain.Corpus) error {
	for i := range c.Documents {
		c.Documents[i].Text = NormalizeText(c.Documents[i].Text)
	}
	return nil
}

// NormalizeText applies the corpus normalization rules to a single string.
func NormalizeText(text string) string {
	lower := strings.ToLower(text)
	letters := nonLetterPattern.ReplaceAllString(lower, "")
	return strings.Join(strings.Fields(letters), " ")
}
