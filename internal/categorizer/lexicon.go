package categorizer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one lexicon entry.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Lexicon maps categories to keywords. Declaration order is significant:
// it breaks ties between categories with the same keyword overlap.
type Lexicon struct {
	categories []Category
}

type lexiconFile struct {
	Categories []Category `yaml:"Categories"`
}

// NewLexicon validates categories and returns an immutable Lexicon.
func NewLexicon(categories []Category) (*Lexicon, error) {
	if len(categories) == 0 {
		return nil, errors.New("lexicon has no categories")
	}

	seen := make(map[string]bool, len(categories))
	out := make([]Category, len(categories))
	for i, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category %d: empty name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("category %q: duplicate name", name)
		}
		seen[name] = true

		kws := make([]string, len(c.Keywords))
		for j, kw := range c.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("category %q: keyword %d is empty", name, j+1)
			}
			kws[j] = kw
		}
		out[i] = Category{Name: name, Keywords: kws}
	}
	return &Lexicon{categories: out}, nil
}

// ParseLexicon decodes a lexicon from YAML of the form
//
//	Categories:
//	  - name: lebensmittel
//	    keywords: [rewe, edeka]
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing lexicon: %w", err)
	}
	return NewLexicon(f.Categories)
}

// LoadLexicon reads a lexicon file from disk.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}
	lex, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// SaveLexicon writes lex to path in the format ParseLexicon reads.
func SaveLexicon(path string, lex *Lexicon) error {
	data, err := yaml.Marshal(lexiconFile{Categories: lex.Categories()})
	if err != nil {
		return fmt.Errorf("marshaling lexicon: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing lexicon: %w", err)
	}
	return nil
}

// Categories returns a copy of the categories in declaration order.
func (l *Lexicon) Categories() []Category {
	out := make([]Category, len(l.categories))
	for i, c := range l.categories {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// Names returns category names in declaration order.
func (l *Lexicon) Names() []string {
	names := make([]string, len(l.categories))
	for i, c := range l.categories {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of categories.
func (l *Lexicon) Len() int { return len(l.categories) }
