package manuscript

// ParagraphType classifies a paragraph by its source style.
type ParagraphType string

const (
	TypeParagraph  ParagraphType = "paragraph"
	TypeHeading    ParagraphType = "heading"
	TypeSubheading ParagraphType = "subheading"
	TypeQuote      ParagraphType = "quote"
)

// Paragraph is one structured paragraph of a manuscript. OrderIndex is
// strictly increasing per document; whitespace-only paragraphs are dropped
// at parse time and never consume an index.
type Paragraph struct {
	ID         string
	Text       string
	Type       ParagraphType
	Level      int
	OrderIndex int
	StyleName  string

	// Annotations filled in by later pipeline stages.
	ChapterTitle   string
	PageNumber     int // 0 = no page matched
	PageConfidence float64
	TokenCount     int
	QuranRefs      []QuranRef
	HadithRefs     []HadithRef
	Footnotes      []FootnoteLink
	Concepts       []Concept
}

// Chapter owns a contiguous run of paragraph indices, starting at the
// level-1 heading that opened it.
type Chapter struct {
	Title            string
	OrderIndex       int
	ParagraphIndices []int
}

// Document is the output of structural parsing: the flat ordered paragraph
// list plus the chapter segmentation over it.
type Document struct {
	Title      string
	Paragraphs []Paragraph
	Chapters   []Chapter
}

// PageMatch records the best-effort page alignment for one paragraph.
// PageNumber is 0 when the best similarity fell below the confidence
// threshold; Confidence always carries the computed score.
type PageMatch struct {
	ParagraphID string
	PageNumber  int
	Confidence  float64
}

// QuranRef is a detected Quran citation. AyahStart is 0 for name-only
// references ("Surah Al-Kahf"); AyahEnd is 0 unless the citation is a range.
type QuranRef struct {
	Surah        int    `json:"surah"`
	AyahStart    int    `json:"ayah_start,omitempty"`
	AyahEnd      int    `json:"ayah_end,omitempty"`
	SurahName    string `json:"surah_name"`
	RawText      string `json:"raw_text"`
	AutoDetected bool   `json:"auto_detected"`
	Verified     bool   `json:"verified"`
}

// HadithRef is a detected Hadith citation. Number may be a composite
// "book:hadith" value for Book/Hadith style citations.
type HadithRef struct {
	Collection     string `json:"collection"`
	Number         string `json:"hadith_number"`
	CollectionName string `json:"collection_name"`
	RawText        string `json:"raw_text"`
	AutoDetected   bool   `json:"auto_detected"`
	Verified       bool   `json:"verified"`
}

// FootnoteLink ties a marker in body text to its definition content.
// Position is a rune offset into the paragraph text.
type FootnoteLink struct {
	Marker   string `json:"marker"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

// Concept is a best-effort taxonomy tag for a paragraph.
type Concept struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// Group is a token-bounded bundle of consecutive paragraphs, one retrieval
// unit for downstream chunked export.
type Group struct {
	OrderIndex int
	TokenCount int
	Paragraphs []Paragraph
}

// Book bundles everything the pipeline produced for one manuscript.
type Book struct {
	Title       string
	Author      string
	Slug        string
	Description string
	SourceFile  string
	Paragraphs  []Paragraph
	Chapters    []Chapter
	Groups      []Group
}
