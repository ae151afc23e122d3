// Package footnote detects footnote markers in body text, parses footnote
// definitions, and links the two.
package footnote

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/infoai1/taliq/internal/manuscript"
)

// superscriptDigits maps Unicode superscript digits to their ASCII forms.
var superscriptDigits = strings.NewReplacer(
	"¹", "1", "²", "2", "³", "3", "⁴", "4", "⁵", "5",
	"⁶", "6", "⁷", "7", "⁸", "8", "⁹", "9", "⁰", "0",
)

// Marker is a footnote marker found in body text. Marker holds the
// normalized form ("1" for ¹ or [1]), Raw the text as matched, and Position
// the rune offset in the paragraph.
type Marker struct {
	Marker   string
	Position int
	Raw      string
}

// Definition is a parsed footnote definition: a number and its content with
// the marker prefix stripped.
type Definition struct {
	Number  string
	Content string
}

var (
	superscriptRunRe = regexp.MustCompile(`[¹²³⁴⁵⁶⁷⁸⁹⁰]+`)
	bracketMarkerRe  = regexp.MustCompile(`\[(\d+)\]`)
	parenMarkerRe    = regexp.MustCompile(`\((\d+)\)`)
	asteriskRunRe    = regexp.MustCompile(`\*+`)
	daggerRunRe      = regexp.MustCompile(`[†‡]+`)

	numberedDefRe    = regexp.MustCompile(`(?m)^\s*(\d+)[.)\s]+(.+)`)
	bracketDefRe     = regexp.MustCompile(`(?m)^\s*\[(\d+)\]\s*(.+)`)
	superscriptDefRe = regexp.MustCompile(`(?m)^\s*([¹²³⁴⁵⁶⁷⁸⁹⁰]+)\s*(.+)`)

	markerPrefixRe  = regexp.MustCompile(`^\s*(\d+|[¹²³⁴⁵⁶⁷⁸⁹⁰]+|\*+|[†‡]+)[.)\]\s]+`)
	bracketPrefixRe = regexp.MustCompile(`^\[(\d+)\]\s*`)
)

func runeOffset(text string, byteIdx int) int {
	return utf8.RuneCountInString(text[:byteIdx])
}

// DetectMarkers finds footnote markers in paragraph text: superscript runs
// (¹²), bracketed numbers ([1]), parenthetical numbers ((1), only when set
// off from surrounding digits), asterisk runs attached to a word, and dagger
// runs. Markers come back sorted by position.
func DetectMarkers(text string) []Marker {
	if text == "" {
		return nil
	}

	var markers []Marker

	for _, loc := range superscriptRunRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		markers = append(markers, Marker{
			Marker:   superscriptDigits.Replace(raw),
			Position: runeOffset(text, loc[0]),
			Raw:      raw,
		})
	}

	for _, loc := range bracketMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		markers = append(markers, Marker{
			Marker:   text[loc[2]:loc[3]],
			Position: runeOffset(text, loc[0]),
			Raw:      text[loc[0]:loc[1]],
		})
	}

	// A parenthetical number counts only when bounded by non-digits, so
	// "(1)" in "10(1)2" stays out.
	for _, loc := range parenMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] == 0 || isDigitByte(text[loc[0]-1]) {
			continue
		}
		if loc[1] < len(text) && isDigitByte(text[loc[1]]) {
			continue
		}
		markers = append(markers, Marker{
			Marker:   text[loc[2]:loc[3]],
			Position: runeOffset(text, loc[0]),
			Raw:      text[loc[0]:loc[1]],
		})
	}

	// Asterisks directly after a word are markers; a run preceded by
	// whitespace is treated as emphasis or decoration and skipped.
	for _, loc := range asteriskRunRe.FindAllStringIndex(text, -1) {
		if loc[0] > 0 {
			switch text[loc[0]-1] {
			case ' ', '\t', '\n':
				continue
			}
		}
		raw := text[loc[0]:loc[1]]
		markers = append(markers, Marker{
			Marker:   raw,
			Position: runeOffset(text, loc[0]),
			Raw:      raw,
		})
	}

	for _, loc := range daggerRunRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		markers = append(markers, Marker{
			Marker:   raw,
			Position: runeOffset(text, loc[0]),
			Raw:      raw,
		})
	}

	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Position < markers[j].Position
	})
	return markers
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// DetectDefinitions parses footnote definitions from a footnote block.
// Recognized line forms: "1. content", "1) content", "[1] content", and
// "¹ content". The first definition wins when a number repeats across forms.
func DetectDefinitions(text string) []Definition {
	if text == "" {
		return nil
	}

	var defs []Definition
	seen := make(map[string]bool)

	add := func(number, content string) {
		content = strings.TrimSpace(content)
		if content == "" || seen[number] {
			return
		}
		seen[number] = true
		defs = append(defs, Definition{Number: number, Content: content})
	}

	for _, m := range numberedDefRe.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2])
	}
	for _, m := range bracketDefRe.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2])
	}
	for _, m := range superscriptDefRe.FindAllStringSubmatch(text, -1) {
		add(superscriptDigits.Replace(m[1]), m[2])
	}

	return defs
}

// ExtractContent strips the marker prefix from a raw footnote line.
func ExtractContent(raw string) string {
	if raw == "" {
		return ""
	}
	content := strings.TrimSpace(raw)
	content = markerPrefixRe.ReplaceAllString(content, "")
	content = bracketPrefixRe.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}

// Link matches markers in paragraph text against footnote definitions.
// Markers with no matching definition are dropped. Links come back in
// marker order.
func Link(paraText string, defs []Definition) []manuscript.FootnoteLink {
	if paraText == "" || len(defs) == 0 {
		return nil
	}

	byNumber := make(map[string]string, len(defs))
	for _, d := range defs {
		if _, ok := byNumber[d.Number]; !ok {
			byNumber[d.Number] = d.Content
		}
	}

	var links []manuscript.FootnoteLink
	for _, m := range DetectMarkers(paraText) {
		content, ok := byNumber[m.Marker]
		if !ok {
			continue
		}
		links = append(links, manuscript.FootnoteLink{
			Marker:   m.Marker,
			Content:  content,
			Position: m.Position,
		})
	}
	return links
}
