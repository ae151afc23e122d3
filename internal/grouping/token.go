package grouping

import (
	"regexp"
	"strings"
)

var (
	wordRe  = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	punctRe = regexp.MustCompile(`[.,!?;:'"()\[\]{}]`)
)

// CountTokens approximates the token count of text: word count plus half the
// punctuation count. Good enough for sizing retrieval chunks; not a model
// tokenizer.
func CountTokens(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	words := len(wordRe.FindAllStringIndex(text, -1))
	punct := len(punctRe.FindAllStringIndex(text, -1))
	return words + punct/2
}
