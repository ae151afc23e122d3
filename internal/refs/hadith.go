package refs

import (
	"regexp"
	"strings"

	"github.com/infoai1/taliq/internal/manuscript"
)

// Collection name variants to canonical collection key, normalized the same
// way NormalizeCollectionName normalizes input.
var collectionNames = map[string]string{
	// Sahih al-Bukhari
	"bukhari":   "bukhari",
	"bukhaaree": "bukhari",
	"bukhaari":  "bukhari",

	// Sahih Muslim
	"muslim": "muslim",

	// Sunan Abu Dawud
	"abudawud":  "abudawud",
	"abudawood": "abudawud",
	"abud":      "abudawud",
	"dawud":     "abudawud",
	"dawood":    "abudawud",
	"daud":      "abudawud",

	// Jami at-Tirmidhi
	"tirmidhi":  "tirmidhi",
	"tirmizi":   "tirmidhi",
	"tirmidhee": "tirmidhi",

	// Sunan Ibn Majah
	"ibnmajah": "ibnmajah",
	"ibnmaja":  "ibnmajah",
	"majah":    "ibnmajah",
	"maja":     "ibnmajah",

	// Sunan an-Nasai
	"nasai":  "nasai",
	"nasaai": "nasai",

	// Muwatta Malik
	"muwatta":       "muwatta",
	"muwattamalik":  "muwatta",
	"maliksmuwatta": "muwatta",

	// Musnad Ahmad
	"ahmad": "ahmad",
	"ahmed": "ahmad",

	// Sunan ad-Darimi
	"darimi":  "darimi",
	"daarimi": "darimi",

	// Sunan al-Bayhaqi
	"bayhaqi":  "bayhaqi",
	"bayhaqee": "bayhaqi",
}

// Full display names per canonical collection key.
var collectionFullNames = map[string]string{
	"bukhari":  "Sahih al-Bukhari",
	"muslim":   "Sahih Muslim",
	"abudawud": "Sunan Abu Dawud",
	"tirmidhi": "Jami at-Tirmidhi",
	"ibnmajah": "Sunan Ibn Majah",
	"nasai":    "Sunan an-Nasai",
	"muwatta":  "Muwatta Malik",
	"ahmad":    "Musnad Ahmad",
	"darimi":   "Sunan ad-Darimi",
	"bayhaqi":  "Sunan al-Bayhaqi",
}

// Collection keywords for pattern matching. An unrecognized collection word
// never matches, even when followed by a number.
const collectionKeywords = `bukhari|bukhaaree|bukhaari|` +
	`muslim|` +
	`abu\s*dawu?d|abu\s*dawood|` +
	`tirmidhi|tirmizi|tirmidhee|` +
	`ibn\s*majah?|` +
	`nasai|nasa'?i|` +
	`muwatta(?:\s+malik)?|malik'?s?\s+muwatta|` +
	`ahmad|ahmed|` +
	`darimi|daarimi|` +
	`bayhaqi|bayhaqee`

var (
	// "Bukhari 1234", "Sahih al-Bukhari, no. 1234", "Muslim #567".
	hadithNumberRe = regexp.MustCompile(
		`(?i)(?:sahih|saheeh|sunan|jami|musnad)?\s*(?:al-|an-|at-|ad-)?(` +
			collectionKeywords + `)[\s,.:]*(?:no\.?|#|hadith)?\s*(\d+)`)

	// "Bukhari, Book 1, Hadith 1", "Tirmidhi Vol. 3, No. 456".
	hadithBookRe = regexp.MustCompile(
		`(?i)(?:sahih|saheeh|sunan|jami|musnad)?\s*(?:al-|an-|at-|ad-)?(` +
			collectionKeywords + `)[\s,]*(?:book|vol\.?|volume)\s*(\d+)[\s,]*(?:hadith|no\.?|#)?\s*(\d+)`)

	collectionPrefixRe  = regexp.MustCompile(`^(sahih|saheeh|sunan|jami|musnad)\s*`)
	collectionArticleRe = regexp.MustCompile(`^(al-|an-|at-|ad-)`)
)

// NormalizeCollectionName resolves a hadith collection name in any common
// transliteration to its canonical key, or "" if not recognized.
func NormalizeCollectionName(name string) string {
	if name == "" {
		return ""
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = collectionPrefixRe.ReplaceAllString(normalized, "")
	normalized = collectionArticleRe.ReplaceAllString(normalized, "")
	normalized = strings.NewReplacer(" ", "", "-", "", "'", "", "’", "").Replace(normalized)
	return collectionNames[normalized]
}

// CollectionName returns the full display name for a canonical collection
// key, or "".
func CollectionName(collection string) string {
	return collectionFullNames[collection]
}

type hadithKey struct {
	collection, number string
}

// DetectHadith finds Hadith citations in text. The Book/Hadith form yields a
// composite "book:hadith" number. Results are deduplicated by (collection,
// number). A collection word with no following number never matches. Pure
// function: identical input yields identical, order-stable output.
func DetectHadith(text string) []manuscript.HadithRef {
	if text == "" {
		return nil
	}

	var out []manuscript.HadithRef
	seen := make(map[hadithKey]bool)

	add := func(collectionRaw, number, raw string) {
		collection := NormalizeCollectionName(collectionRaw)
		if collection == "" {
			return
		}
		key := hadithKey{collection, number}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, manuscript.HadithRef{
			Collection:     collection,
			Number:         number,
			CollectionName: CollectionName(collection),
			RawText:        strings.TrimSpace(raw),
			AutoDetected:   true,
		})
	}

	for _, m := range hadithNumberRe.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2], m[0])
	}
	for _, m := range hadithBookRe.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2]+":"+m[3], m[0])
	}

	return out
}
