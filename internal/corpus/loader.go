package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"stylo/internal/domain"
)

// LoadDirectory reads every .txt file directly under dir into a corpus,
// in lexical filename order. The filename stem carries the metadata as
// "author_title.txt"; a stem without an underscore gets author "unknown"
// and the whole stem as title.
func LoadDirectory(dir, language string) (*domain.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoad, dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	c := &domain.Corpus{Language: language}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrLoad, name, err)
		}
		author, title := splitStem(strings.TrimSuffix(name, filepath.Ext(name)))
		c.Documents = append(c.Documents, domain.Document{
			Title:  title,
			Author: author,
			Text:   string(data),
		})
	}
	if len(c.Documents) == 0 {
		return nil, fmt.Errorf("%w: no .txt documents in %s", domain.ErrLoad, dir)
	}
	return c, nil
}

func splitStem(stem string) (author, title string) {
	if i := strings.Index(stem, "_"); i > 0 && i < len(stem)-1 {
		return stem[:i], stem[i+1:]
	}
	return "unknown", stem
}
