package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/infoai1/taliq/internal/manuscript"
)

func sampleBook() manuscript.Book {
	p0 := manuscript.Paragraph{
		ID: "id-0", Text: "Chapter One", Type: manuscript.TypeHeading,
		Level: 1, OrderIndex: 0, ChapterTitle: "Chapter One", TokenCount: 2,
	}
	p1 := manuscript.Paragraph{
		ID: "id-1", Text: "As stated in Quran 2:255.", Type: manuscript.TypeParagraph,
		OrderIndex: 1, ChapterTitle: "Chapter One", PageNumber: 3, TokenCount: 6,
		QuranRefs: []manuscript.QuranRef{{
			Surah: 2, AyahStart: 255, SurahName: "Al-Baqarah",
			RawText: "Quran 2:255", AutoDetected: true,
		}},
	}
	p2 := manuscript.Paragraph{
		ID: "id-2", Text: "Narrated in Bukhari 1.", Type: manuscript.TypeParagraph,
		OrderIndex: 2, ChapterTitle: "Chapter One", PageNumber: 5, TokenCount: 5,
		HadithRefs: []manuscript.HadithRef{{
			Collection: "bukhari", Number: "1", CollectionName: "Sahih al-Bukhari",
			RawText: "Bukhari 1", AutoDetected: true,
		}},
	}
	return manuscript.Book{
		Title:      "Test Book",
		Author:     "Test Author",
		Slug:       "test-book",
		SourceFile: "test.docx",
		Paragraphs: []manuscript.Paragraph{p0, p1, p2},
		Groups: []manuscript.Group{{
			OrderIndex: 0, TokenCount: 13,
			Paragraphs: []manuscript.Paragraph{p0, p1, p2},
		}},
	}
}

func TestValidate(t *testing.T) {
	book := sampleBook()
	if !Validate(book) {
		t.Error("sample book should validate")
	}

	noTitle := book
	noTitle.Title = ""
	if Validate(noTitle) {
		t.Error("book without title should not validate")
	}

	badPara := sampleBook()
	badPara.Paragraphs[1].ID = ""
	if Validate(badPara) {
		t.Error("paragraph without ID should not validate")
	}

	emptyText := sampleBook()
	emptyText.Paragraphs[2].Text = ""
	if Validate(emptyText) {
		t.Error("paragraph without text should not validate")
	}
}

func TestBuildBook(t *testing.T) {
	book := sampleBook()
	groupOf := map[string]int{"id-0": 0, "id-1": 0, "id-2": 0}
	out := BuildBook(book, groupOf)

	if out.Format != "book_json" || out.Version != "1.0" {
		t.Errorf("format/version = %s/%s", out.Format, out.Version)
	}
	if out.ExportedAt == "" {
		t.Error("exported_at missing")
	}
	if out.Title != "Test Book" || out.Slug != "test-book" {
		t.Errorf("metadata mismatch: %+v", out)
	}
	if len(out.Paragraphs) != 3 || len(out.Groups) != 1 {
		t.Fatalf("got %d paragraphs, %d groups", len(out.Paragraphs), len(out.Groups))
	}

	if !out.Paragraphs[0].IsHeading || out.Paragraphs[0].HeadingLevel != 1 {
		t.Errorf("heading paragraph not flagged: %+v", out.Paragraphs[0])
	}
	if out.Paragraphs[1].IsHeading {
		t.Error("body paragraph flagged as heading")
	}
	if out.Paragraphs[1].GroupID == nil || *out.Paragraphs[1].GroupID != 0 {
		t.Errorf("group 0 must survive export: %+v", out.Paragraphs[1].GroupID)
	}

	if out.Stats.ParagraphCount != 3 || out.Stats.GroupCount != 1 || out.Stats.TotalTokens != 13 {
		t.Errorf("stats = %+v", out.Stats)
	}
	if len(out.Groups[0].ParagraphIDs) != 3 {
		t.Errorf("group paragraph IDs = %v", out.Groups[0].ParagraphIDs)
	}
}

func TestBuildBook_UngroupedParagraph(t *testing.T) {
	book := sampleBook()
	out := BuildBook(book, nil)
	for _, p := range out.Paragraphs {
		if p.GroupID != nil {
			t.Errorf("paragraph %s should have no group, got %d", p.ID, *p.GroupID)
		}
	}
}

func TestBuildChunks(t *testing.T) {
	chunks := BuildChunks(sampleBook())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}

	c := chunks[0]
	if !strings.Contains(c.Content, "Chapter One\n\nAs stated in Quran 2:255.") {
		t.Errorf("content join wrong: %q", c.Content)
	}
	if c.Metadata.Source != "test-book" || c.Metadata.ChunkIndex != 0 {
		t.Errorf("metadata = %+v", c.Metadata)
	}
	if c.Metadata.Chapter != "Chapter One" {
		t.Errorf("chapter = %q, want Chapter One", c.Metadata.Chapter)
	}
	if c.Metadata.PageStart != 3 || c.Metadata.PageEnd != 5 {
		t.Errorf("page range = %d-%d, want 3-5", c.Metadata.PageStart, c.Metadata.PageEnd)
	}
	if len(c.Metadata.ParagraphIDs) != 3 {
		t.Errorf("paragraph IDs = %v", c.Metadata.ParagraphIDs)
	}
}

func TestBuildChunks_MixedChaptersOmitChapter(t *testing.T) {
	book := sampleBook()
	book.Paragraphs[2].ChapterTitle = "Chapter Two"
	book.Groups[0].Paragraphs[2].ChapterTitle = "Chapter Two"
	chunks := BuildChunks(book)
	if chunks[0].Metadata.Chapter != "" {
		t.Errorf("mixed-chapter chunk should omit chapter, got %q", chunks[0].Metadata.Chapter)
	}
}

func TestBuildChunks_NoPagesOmitRange(t *testing.T) {
	book := sampleBook()
	for i := range book.Groups[0].Paragraphs {
		book.Groups[0].Paragraphs[i].PageNumber = 0
	}
	chunks := BuildChunks(book)
	if chunks[0].Metadata.PageStart != 0 || chunks[0].Metadata.PageEnd != 0 {
		t.Errorf("expected no page range, got %d-%d",
			chunks[0].Metadata.PageStart, chunks[0].Metadata.PageEnd)
	}
}

func TestBookJSON_RoundTrip(t *testing.T) {
	data, err := BookJSON(sampleBook(), map[string]int{"id-0": 0, "id-1": 0, "id-2": 0})
	if err != nil {
		t.Fatalf("BookJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON produced: %v", err)
	}
	if decoded["format"] != "book_json" {
		t.Errorf("format = %v", decoded["format"])
	}
}

func TestBookJSON_InvalidBook(t *testing.T) {
	book := sampleBook()
	book.Title = ""
	if _, err := BookJSON(book, nil); err == nil {
		t.Error("expected error for invalid book")
	}
}

func TestChunksJSON_NoHTMLEscaping(t *testing.T) {
	book := sampleBook()
	book.Paragraphs[1].Text = "a < b & c"
	book.Groups[0].Paragraphs[1].Text = "a < b & c"
	data, err := ChunksJSON(book)
	if err != nil {
		t.Fatalf("ChunksJSON: %v", err)
	}
	if strings.Contains(string(data), `<`) {
		t.Error("HTML escaping should be off")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	bookPath, chunksPath, err := WriteFiles(dir, sampleBook(), nil)
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if filepath.Base(bookPath) != "test-book_book.json" {
		t.Errorf("book path = %s", bookPath)
	}
	if filepath.Base(chunksPath) != "test-book_chunks.json" {
		t.Errorf("chunks path = %s", chunksPath)
	}
	for _, p := range []string{bookPath, chunksPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing output file %s: %v", p, err)
		}
	}
}

func TestKGEntries(t *testing.T) {
	entries := KGEntries(sampleBook())
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].EntityType != "BOOK" || entries[0].EntityName != "Test Book" {
		t.Errorf("book entity = %+v", entries[0])
	}
	if entries[1].EntityType != "QURAN_REF" || entries[1].EntityName != "Quran 2:255" {
		t.Errorf("quran entity = %+v", entries[1])
	}
	if entries[2].EntityType != "HADITH_REF" || entries[2].SourceChunkID != "test-book_0" {
		t.Errorf("hadith entity = %+v", entries[2])
	}
}
