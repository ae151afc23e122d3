package refs

import (
	"reflect"
	"testing"
)

func TestDetectQuran_NumericFormats(t *testing.T) {
	tests := []struct {
		text      string
		wantSurah int
		wantAyah  int
	}{
		{"Quran 2:255", 2, 255},
		{"quran 2:255", 2, 255},
		{"QURAN 2:255", 2, 255},
		{"Qur'an 2:255", 2, 255},
		{"Qur’an 2:255", 2, 255},
		{"Quran, 2:255", 2, 255},
		{"Q. 2:255", 2, 255},
		{"see (2:255)", 2, 255},
		{"verse ( 2:255 )", 2, 255},
		{"cf. (2: 255)", 2, 255},
		{"Quran 1:1", 1, 1},
		{"Quran 114:6", 114, 6},
		{"Quran 36:1", 36, 1},
		{"The verse (2:255) speaks of God's throne", 2, 255},
		{"See Quran 3:19 for guidance", 3, 19},
	}
	for _, tt := range tests {
		refs := DetectQuran(tt.text)
		if len(refs) != 1 {
			t.Errorf("DetectQuran(%q): expected 1 ref, got %d", tt.text, len(refs))
			continue
		}
		if refs[0].Surah != tt.wantSurah || refs[0].AyahStart != tt.wantAyah {
			t.Errorf("DetectQuran(%q) = %d:%d, want %d:%d",
				tt.text, refs[0].Surah, refs[0].AyahStart, tt.wantSurah, tt.wantAyah)
		}
	}
}

func TestDetectQuran_RangeFormats(t *testing.T) {
	tests := []struct {
		text                 string
		surah, start, finish int
	}{
		{"Quran 2:255-257", 2, 255, 257},
		{"Quran 1:1-7", 1, 1, 7},
		{"see (2:1-5)", 2, 1, 5},
		{"Quran 36:1-10", 36, 1, 10},
		{"Quran 2:255–257", 2, 255, 257}, // en-dash
		{"Quran 2:255—257", 2, 255, 257}, // em-dash
	}
	for _, tt := range tests {
		refs := DetectQuran(tt.text)
		if len(refs) != 1 {
			t.Errorf("DetectQuran(%q): expected 1 ref, got %d", tt.text, len(refs))
			continue
		}
		if refs[0].Surah != tt.surah || refs[0].AyahStart != tt.start || refs[0].AyahEnd != tt.finish {
			t.Errorf("DetectQuran(%q) = %d:%d-%d, want %d:%d-%d", tt.text,
				refs[0].Surah, refs[0].AyahStart, refs[0].AyahEnd, tt.surah, tt.start, tt.finish)
		}
	}
}

func TestDetectQuran_BareParentheticalIgnored(t *testing.T) {
	// Without a context word, (2:255) could be anything (a ratio, a time).
	refs := DetectQuran("The score was (2:255) in the ledger")
	if len(refs) != 0 {
		t.Errorf("bare parenthetical should not match, got %d refs", len(refs))
	}
}

func TestDetectQuran_SurahNameFormats(t *testing.T) {
	tests := []struct {
		text      string
		wantSurah int
	}{
		{"Surah Al-Baqarah", 2},
		{"Surah al-Baqarah", 2},
		{"Sura Baqarah", 2},
		{"Surah Al-Fatiha", 1},
		{"Surah Fatiha", 1},
		{"Surah Al-Fatihah", 1},
		{"Surah Yasin", 36},
		{"Surah Ya-Sin", 36},
		{"Surah Yaseen", 36},
		{"Surah An-Nas", 114},
		{"Surah Al-Ikhlas", 112},
		{"Surah Al-Kahf", 18},
		{"Surah Maryam", 19},
		{"Surah Yusuf", 12},
	}
	for _, tt := range tests {
		refs := DetectQuran(tt.text)
		if len(refs) != 1 {
			t.Errorf("DetectQuran(%q): expected 1 ref, got %d", tt.text, len(refs))
			continue
		}
		if refs[0].Surah != tt.wantSurah {
			t.Errorf("DetectQuran(%q) surah = %d, want %d", tt.text, refs[0].Surah, tt.wantSurah)
		}
		if refs[0].AyahStart != 0 {
			t.Errorf("DetectQuran(%q) should be name-only, got ayah %d", tt.text, refs[0].AyahStart)
		}
	}
}

func TestDetectQuran_SurahNameWithVerse(t *testing.T) {
	tests := []struct {
		text      string
		wantSurah int
		wantAyah  int
	}{
		{"Al-Baqarah: 255", 2, 255},
		{"Al-Baqarah:255", 2, 255},
		{"Al-Baqarah, verse 255", 2, 255},
		{"Al-Baqarah verse 255", 2, 255},
		{"Al-Baqarah, 255", 2, 255},
		{"Al-Fatiha: 1-7", 1, 1},
	}
	for _, tt := range tests {
		refs := DetectQuran(tt.text)
		if len(refs) < 1 {
			t.Errorf("DetectQuran(%q): expected at least 1 ref", tt.text)
			continue
		}
		if refs[0].Surah != tt.wantSurah || refs[0].AyahStart != tt.wantAyah {
			t.Errorf("DetectQuran(%q) = %d:%d, want %d:%d",
				tt.text, refs[0].Surah, refs[0].AyahStart, tt.wantSurah, tt.wantAyah)
		}
	}
}

func TestDetectQuran_MultipleReferences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"See Quran 2:255 and Quran 3:1", 2},
		{"Compare verse (2:255) with verse (3:18)", 2},
		{"Surah Al-Fatiha and Surah Al-Baqarah", 2},
		{"Quran 2:255, Quran 3:18, and Quran 4:1", 3},
		{"Quran 2:255 and Quran 2:256 and Quran 2:257", 3},
	}
	for _, tt := range tests {
		if got := len(DetectQuran(tt.text)); got != tt.want {
			t.Errorf("DetectQuran(%q): expected %d refs, got %d", tt.text, tt.want, got)
		}
	}
}

func TestDetectQuran_NoMatchCases(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"No references here",
		"Quran 999:999", // no such surah
		"Quran 2:300",   // Al-Baqarah has 286 ayahs
		"Quran 0:1",     // surahs start at 1
	} {
		if refs := DetectQuran(text); len(refs) != 0 {
			t.Errorf("DetectQuran(%q): expected no refs, got %d", text, len(refs))
		}
	}
}

func TestDetectQuran_DuplicatesCollapse(t *testing.T) {
	refs := DetectQuran("Quran 2:255 ... and again Quran 2:255")
	if len(refs) != 1 {
		t.Errorf("expected dedup to 1 ref, got %d", len(refs))
	}
}

func TestDetectQuran_Metadata(t *testing.T) {
	refs := DetectQuran("As stated in Quran 2:255, the verse continues")
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	if refs[0].RawText == "" {
		t.Error("expected raw text to be recorded")
	}
	if refs[0].SurahName != "Al-Baqarah" {
		t.Errorf("expected surah name Al-Baqarah, got %q", refs[0].SurahName)
	}
	if !refs[0].AutoDetected {
		t.Error("detected refs should be flagged auto-detected")
	}
	if refs[0].Verified {
		t.Error("detection must not mark refs verified")
	}
}

func TestDetectQuran_Idempotent(t *testing.T) {
	text := "Surah Al-Kahf, Quran 18:10, and verse (2:255) again"
	first := DetectQuran(text)
	second := DetectQuran(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("detection not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizeSurahName(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Al-Baqarah", 2},
		{"baqarah", 2},
		{"BAQARAH", 2},
		{"An-Nas", 114},
		{"Ash-Shams", 91},
		{"Yasin", 36},
		{"cow", 2},
		{"", 0},
		{"notasurah", 0},
	}
	for _, tt := range tests {
		if got := NormalizeSurahName(tt.in); got != tt.want {
			t.Errorf("NormalizeSurahName(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSurahTables_Complete(t *testing.T) {
	if len(surahCanonicalNames) != 114 {
		t.Errorf("expected 114 canonical names, got %d", len(surahCanonicalNames))
	}
	if len(maxAyahs) != 114 {
		t.Errorf("expected 114 ayah bounds, got %d", len(maxAyahs))
	}
	mapped := make(map[int]bool)
	for _, n := range surahNames {
		mapped[n] = true
	}
	for i := 1; i <= 114; i++ {
		if !mapped[i] {
			t.Errorf("surah %d has no name variant", i)
		}
	}
}
