package corpus

import (
	"fmt"
	"strings"

	"stylo/internal/domain"
)

// Segment replaces every tokenized document with fixed-size token windows
// advancing by step tokens, so overlapping segments are possible when
// step < size. Each segment becomes its own document titled
// "<title>-<n>" under the parent's author. A size of 0 disables
// segmentation; a step of 0 means non-overlapping windows.
func Segment(c *domain.Corpus, size, step int) error {
	if size <= 0 {
		return nil
	}
	if step <= 0 || step > size {
		step = size
	}
	var segmented []domain.Document
	for _, d := range c.Documents {
		n := 0
		for start := 0; start < len(d.Tokens); start += step {
			end := start + size
			if end > len(d.Tokens) {
				end = len(d.Tokens)
			}
			window := d.Tokens[start:end]
			n++
			segmented = append(segmented, domain.Document{
				Title:  fmt.Sprintf("%s-%d", d.Title, n),
				Author: d.Author,
				Text:   strings.Join(window, " "),
				Tokens: append([]string(nil), window...),
			})
			if end == len(d.Tokens) {
				break
			}
		}
	}
	c.Documents = segmented
	return nil
}
