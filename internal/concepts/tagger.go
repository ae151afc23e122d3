package concepts

import (
	"strings"

	"github.com/infoai1/taliq/internal/manuscript"
)

// minTextLength is the shortest text worth tagging.
const minTextLength = 10

// keywordRule maps trigger words to a taxonomy tag.
type keywordRule struct {
	words       []string
	category    string
	subcategory string
}

var rules = []keywordRule{
	{[]string{"peace", "peaceful", "harmony"}, "PEACE", "culture_of_peace"},
	{[]string{"god", "allah", "lord", "creator"}, "GOD_REALIZATION", "discovering_god_in_creation"},
	{[]string{"patience", "sabr", "perseverance"}, "SPIRITUALITY", "patience"},
	{[]string{"quran", "qur'an", "scripture"}, "QURAN", "understanding_quran"},
	{[]string{"prophet", "muhammad", "messenger"}, "PROPHETIC_WISDOM", "prophet_as_model"},
}

// Tagger tags text against an optional taxonomy. With a taxonomy loaded,
// tags whose category the taxonomy does not define are dropped.
type Tagger struct {
	taxonomy *Taxonomy
}

// NewTagger builds a tagger. taxonomy may be nil.
func NewTagger(taxonomy *Taxonomy) *Tagger {
	return &Tagger{taxonomy: taxonomy}
}

// Tag tags a paragraph's text. Text shorter than ten characters after
// trimming is skipped.
func (t *Tagger) Tag(text string) []manuscript.Concept {
	if len(strings.TrimSpace(text)) < minTextLength {
		return nil
	}

	lower := strings.ToLower(text)
	var out []manuscript.Concept
	for _, rule := range rules {
		for _, w := range rule.words {
			if strings.Contains(lower, w) {
				if t.taxonomy == nil || t.taxonomy.Has(rule.category) {
					out = append(out, manuscript.Concept{
						Category:    rule.category,
						Subcategory: rule.subcategory,
					})
				}
				break
			}
		}
	}
	return out
}
