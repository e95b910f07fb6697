package categorizer

import (
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/expenses-dev/expenses/internal/model"
)

// Categorizer assigns lexicon categories by keyword overlap.
type Categorizer struct {
	names    []string
	keywords [][]string // folded, parallel to names
	fold     cases.Caser
	log      zerolog.Logger
}

// New builds a Categorizer from lex. Keywords are case-folded once here.
func New(lex *Lexicon, log zerolog.Logger) *Categorizer {
	c := &Categorizer{
		fold: cases.Lower(language.German),
		log:  log.With().Str("component", "categorizer").Logger(),
	}
	for _, cat := range lex.categories {
		kws := make([]string, len(cat.Keywords))
		for i, kw := range cat.Keywords {
			kws[i] = c.fold.String(kw)
		}
		c.names = append(c.names, cat.Name)
		c.keywords = append(c.keywords, kws)
	}
	c.log.Debug().Int("categories", lex.Len()).Msg("lexicon loaded")
	return c
}

// Classify returns the category whose keywords occur most often as
// substrings of text. The first category in lexicon order wins a tie.
// With no matching keyword at all it returns model.FallbackCategory.
func (c *Categorizer) Classify(text string) string {
	folded := c.fold.String(text)

	best, bestScore := "", 0
	for i, kws := range c.keywords {
		score := overlap(folded, kws)
		if score > bestScore {
			best, bestScore = c.names[i], score
		}
	}
	if bestScore == 0 {
		return model.FallbackCategory
	}
	return best
}

// Overlap returns the per-category keyword overlap for text in lexicon
// order. Used by the CLI to explain a classification.
func (c *Categorizer) Overlap(text string) map[string]int {
	folded := c.fold.String(text)
	out := make(map[string]int, len(c.names))
	for i, kws := range c.keywords {
		out[c.names[i]] = overlap(folded, kws)
	}
	return out
}

// ClassifyBatch returns a copy of b with categories assigned. Incomplete
// rows keep an empty category. Synthetic compensation rows keep theirs.
func (c *Categorizer) ClassifyBatch(b *model.Batch) *model.Batch {
	out := b.Clone()

	var classified, fallback, skipped int
	for i := range out.Transactions {
		t := &out.Transactions[i]
		switch {
		case t.Synthetic:
			continue
		case t.Incomplete:
			t.Category = ""
			skipped++
			continue
		}
		t.Category = c.Classify(t.ClassificationText())
		classified++
		if t.Category == model.FallbackCategory {
			fallback++
		}
	}

	c.log.Debug().
		Str("source", b.Source).
		Int("classified", classified).
		Int("fallback", fallback).
		Int("skipped", skipped).
		Msg("batch classified")
	return out
}

func overlap(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
