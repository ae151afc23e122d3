package pagematch

import (
	"regexp"
	"strings"

	"github.com/infoai1/taliq/internal/manuscript"
)

// MinConfidence is the default threshold below which a best match is
// reported as "no page".
const MinConfidence = 0.3

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText lowercases, collapses whitespace runs to single spaces, and
// trims.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
}

// Similarity scores how well search text matches a target page in [0,1].
// Verbatim substring containment short-circuits to 1.0. Otherwise the score
// combines word overlap with the longest contiguous phrase run; contiguity
// is weighted higher because pure bag-of-words overlap cannot tell apart
// pages that share common vocabulary.
func Similarity(search, target string) float64 {
	norm1 := NormalizeText(search)
	norm2 := NormalizeText(target)

	if norm1 == "" || norm2 == "" {
		return 0
	}
	if strings.Contains(norm2, norm1) {
		return 1.0
	}

	words := strings.Fields(norm1)
	if len(words) == 0 {
		return 0
	}

	targetWords := make(map[string]bool)
	for _, w := range strings.Fields(norm2) {
		targetWords[w] = true
	}

	matches := 0
	for _, w := range words {
		if targetWords[w] {
			matches++
		}
	}
	overlapRatio := float64(matches) / float64(len(words))

	// Longest contiguous run of search words found as a literal phrase in
	// the target, scanned longest-first per starting position.
	consecutiveScore := 0.0
	for i := 0; i < len(words); i++ {
		for j := len(words); j > i; j-- {
			phrase := strings.Join(words[i:j], " ")
			if strings.Contains(norm2, phrase) {
				score := float64(j-i) / float64(len(words))
				if score > consecutiveScore {
					consecutiveScore = score
				}
				break
			}
		}
	}

	final := overlapRatio*0.4 + consecutiveScore*0.6
	if final > 1.0 {
		final = 1.0
	}
	return final
}

// MatchParagraph finds the best page for a paragraph. Ties keep the first
// (lowest-numbered) page. When the best score is below minConfidence the
// returned match has PageNumber 0 but still reports the computed score.
func MatchParagraph(text string, pages []Page, minConfidence float64) manuscript.PageMatch {
	if text == "" || len(pages) == 0 {
		return manuscript.PageMatch{}
	}

	bestPage := 0
	bestScore := 0.0

	for _, page := range pages {
		target := page.normalized
		if target == "" {
			target = NormalizeText(page.Text)
		}
		if target == "" {
			continue
		}

		score := Similarity(text, target)
		if score > bestScore {
			bestScore = score
			bestPage = page.Number
		}
	}

	if bestScore < minConfidence {
		return manuscript.PageMatch{PageNumber: 0, Confidence: bestScore}
	}
	return manuscript.PageMatch{PageNumber: bestPage, Confidence: bestScore}
}

// MatchBatch aligns paragraphs against a PDF, preserving input order. Page
// extraction happens once for the whole batch.
func MatchBatch(paragraphs []manuscript.Paragraph, pdfPath string, minConfidence float64) ([]manuscript.PageMatch, error) {
	if len(paragraphs) == 0 {
		return nil, nil
	}

	pages, err := ExtractPages(pdfPath)
	if err != nil {
		return nil, err
	}

	results := make([]manuscript.PageMatch, 0, len(paragraphs))
	for _, para := range paragraphs {
		m := MatchParagraph(para.Text, pages, minConfidence)
		m.ParagraphID = para.ID
		results = append(results, m)
	}
	return results, nil
}
