package refs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/infoai1/taliq/internal/manuscript"
)

// Surah-name fragment shared by the name-based patterns: an optional
// definite-article prefix followed by a transliterated name.
const surahNameFragment = `((?:al-?|an-?|as-?|at-?|ad-?|az-?|ar-?|ash-?|aal-?)?[a-zA-Z\-]+)`

var (
	// "Quran 2:255", "Qur'an 2:255-257", "Q. 2:255".
	quranPrefixRe = regexp.MustCompile(
		`(?i)(?:qur['’]?[aā]n|q\.)\s*,?\s*(\d{1,3})\s*:\s*(\d{1,3})(?:\s*[-–—]\s*(\d{1,3}))?`)

	// Parenthetical "(2:255)" gated on a preceding context word, so bare
	// parenthetical numbers elsewhere in the text are not misread as
	// citations.
	quranParenRe = regexp.MustCompile(
		`(?i)(?:verse|ayah|ayat|see|cf\.|compare|mentioned\s+in|stated\s+in|reference)\s*` +
			`\(\s*(\d{1,3})\s*:\s*(\d{1,3})(?:\s*[-–—]\s*(\d{1,3}))?\s*\)`)

	// "Surah Al-Baqarah".
	surahOnlyRe = regexp.MustCompile(`(?i)(?:surah?|sura)\s+` + surahNameFragment)

	// "Al-Baqarah: 255", "Al-Baqarah verse 255-257".
	surahVerseRe = regexp.MustCompile(
		`(?i)` + surahNameFragment + `[\s:,]+(?:verse\s+)?(\d{1,3})(?:\s*[-–—]\s*(\d{1,3}))?`)

	// Longest alternatives first so "ash-" and "aal-" are stripped whole.
	surahPrefixRe = regexp.MustCompile(`^(aal|ash|al|an|as|at|ad|az|ar)-?`)
)

// NormalizeSurahName resolves a surah name in any common transliteration to
// its number, or 0 if unknown.
func NormalizeSurahName(name string) int {
	if name == "" {
		return 0
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = surahPrefixRe.ReplaceAllString(normalized, "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, " ", "")
	return surahNames[normalized]
}

// SurahName returns the canonical name for a surah number, or "".
func SurahName(surah int) string {
	return surahCanonicalNames[surah]
}

// ValidQuranRef reports whether a numeric reference is within bounds.
// ayahEnd of 0 means a single-ayah reference.
func ValidQuranRef(surah, ayahStart, ayahEnd int) bool {
	if surah < 1 || surah > 114 {
		return false
	}
	max := maxAyahs[surah]
	if ayahStart < 1 || ayahStart > max {
		return false
	}
	if ayahEnd != 0 && (ayahEnd < ayahStart || ayahEnd > max) {
		return false
	}
	return true
}

type quranKey struct {
	surah, ayahStart, ayahEnd int
}

// DetectQuran finds Quran citations in text. All patterns run; results are
// merged and deduplicated by (surah, ayahStart, ayahEnd). Out-of-range
// numeric matches are discarded silently. Pure function: identical input
// yields identical, order-stable output.
func DetectQuran(text string) []manuscript.QuranRef {
	if text == "" {
		return nil
	}

	var out []manuscript.QuranRef
	seen := make(map[quranKey]bool)

	addNumeric := func(m []string, raw string) {
		surah, _ := strconv.Atoi(m[1])
		ayahStart, _ := strconv.Atoi(m[2])
		ayahEnd := 0
		if m[3] != "" {
			ayahEnd, _ = strconv.Atoi(m[3])
		}
		if !ValidQuranRef(surah, ayahStart, ayahEnd) {
			return
		}
		key := quranKey{surah, ayahStart, ayahEnd}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, manuscript.QuranRef{
			Surah:        surah,
			AyahStart:    ayahStart,
			AyahEnd:      ayahEnd,
			SurahName:    SurahName(surah),
			RawText:      strings.TrimSpace(raw),
			AutoDetected: true,
		})
	}

	for _, m := range quranPrefixRe.FindAllStringSubmatch(text, -1) {
		addNumeric(m, m[0])
	}
	for _, m := range quranParenRe.FindAllStringSubmatch(text, -1) {
		addNumeric(m, m[0])
	}

	for _, m := range surahOnlyRe.FindAllStringSubmatch(text, -1) {
		surah := NormalizeSurahName(m[1])
		if surah == 0 {
			continue
		}
		key := quranKey{surah, 0, 0}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, manuscript.QuranRef{
			Surah:        surah,
			SurahName:    SurahName(surah),
			RawText:      strings.TrimSpace(m[0]),
			AutoDetected: true,
		})
	}

	for _, m := range surahVerseRe.FindAllStringSubmatch(text, -1) {
		surah := NormalizeSurahName(m[1])
		if surah == 0 {
			continue
		}
		ayahStart, _ := strconv.Atoi(m[2])
		ayahEnd := 0
		if m[3] != "" {
			ayahEnd, _ = strconv.Atoi(m[3])
		}
		if !ValidQuranRef(surah, ayahStart, ayahEnd) {
			continue
		}
		key := quranKey{surah, ayahStart, ayahEnd}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, manuscript.QuranRef{
			Surah:        surah,
			AyahStart:    ayahStart,
			AyahEnd:      ayahEnd,
			SurahName:    SurahName(surah),
			RawText:      strings.TrimSpace(m[0]),
			AutoDetected: true,
		})
	}

	return out
}
