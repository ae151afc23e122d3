package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/infoai1/taliq/internal/manuscript"
)

var headingLevelRe = regexp.MustCompile(`heading\s*(\d+)`)

// quoteStyleWords are the style-name fragments that mark quotation styles.
// Word styles appear both as display names ("Block Text", "Intense Quote")
// and as style IDs without spaces ("BlockText", "IntenseQuote"), so both
// spellings are checked.
var quoteStyleWords = []string{"quote", "block text", "blocktext", "intense"}

// detectParagraphType maps a word-processor style name to a paragraph type
// and level. Unknown and empty styles are plain paragraphs at level 1.
func detectParagraphType(styleName string) (manuscript.ParagraphType, int) {
	if styleName == "" {
		return manuscript.TypeParagraph, 1
	}

	lower := strings.ToLower(styleName)

	if strings.Contains(lower, "heading") || lower == "title" {
		level := 1
		if m := headingLevelRe.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				level = n
			}
		}
		return manuscript.TypeHeading, level
	}

	for _, q := range quoteStyleWords {
		if strings.Contains(lower, q) {
			return manuscript.TypeQuote, 1
		}
	}

	return manuscript.TypeParagraph, 1
}
