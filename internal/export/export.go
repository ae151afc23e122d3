// Package export renders processed books into the two downstream JSON
// formats: a full book document and a flat retrieval-chunk list.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/infoai1/taliq/internal/manuscript"
)

// ParagraphExport is the export shape of one paragraph. Optional fields are
// omitted when unset; GroupID is a pointer so group 0 survives serialization.
type ParagraphExport struct {
	ID           string                    `json:"id"`
	Text         string                    `json:"text"`
	OrderIndex   int                       `json:"order_index"`
	ChapterTitle string                    `json:"chapter_title,omitempty"`
	PageNumber   int                       `json:"page_number,omitempty"`
	IsHeading    bool                      `json:"is_heading,omitempty"`
	HeadingLevel int                       `json:"heading_level,omitempty"`
	QuranRefs    []manuscript.QuranRef     `json:"quran_refs,omitempty"`
	HadithRefs   []manuscript.HadithRef    `json:"hadith_refs,omitempty"`
	Footnotes    []manuscript.FootnoteLink `json:"footnotes,omitempty"`
	Concepts     []manuscript.Concept      `json:"concepts,omitempty"`
	GroupID      *int                      `json:"group_id,omitempty"`
	TokenCount   int                       `json:"token_count,omitempty"`
}

// GroupExport references member paragraphs by ID only.
type GroupExport struct {
	OrderIndex   int      `json:"order_index"`
	TokenCount   int      `json:"token_count"`
	ParagraphIDs []string `json:"paragraph_ids"`
}

// Stats summarizes an exported book.
type Stats struct {
	ParagraphCount int `json:"paragraph_count"`
	GroupCount     int `json:"group_count"`
	TotalTokens    int `json:"total_tokens"`
}

// BookExport is the full book document format.
type BookExport struct {
	ExportedAt  string            `json:"exported_at"`
	Format      string            `json:"format"`
	Version     string            `json:"version"`
	Title       string            `json:"title"`
	Author      string            `json:"author,omitempty"`
	Slug        string            `json:"slug,omitempty"`
	Description string            `json:"description,omitempty"`
	SourceFile  string            `json:"source_file,omitempty"`
	Paragraphs  []ParagraphExport `json:"paragraphs"`
	Groups      []GroupExport     `json:"groups"`
	Stats       Stats             `json:"stats"`
}

// Chunk is one retrieval unit: the concatenated group text plus provenance.
type Chunk struct {
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkMetadata carries chunk provenance. Chapter is set only when every
// member paragraph sits in the same chapter; the page range only when at
// least one member matched a page.
type ChunkMetadata struct {
	Source       string   `json:"source"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	ChunkIndex   int      `json:"chunk_index"`
	TokenCount   int      `json:"token_count"`
	ParagraphIDs []string `json:"paragraph_ids"`
	Chapter      string   `json:"chapter,omitempty"`
	PageStart    int      `json:"page_start,omitempty"`
	PageEnd      int      `json:"page_end,omitempty"`
}

const (
	formatBookJSON = "book_json"
	formatVersion  = "1.0"
)

// Validate reports whether a book is fit for export: a title, and every
// paragraph carrying an ID and text.
func Validate(book manuscript.Book) bool {
	if book.Title == "" {
		return false
	}
	for _, p := range book.Paragraphs {
		if p.ID == "" || p.Text == "" {
			return false
		}
	}
	return true
}

func paragraphExport(p manuscript.Paragraph, groupOf map[string]int) ParagraphExport {
	out := ParagraphExport{
		ID:           p.ID,
		Text:         p.Text,
		OrderIndex:   p.OrderIndex,
		ChapterTitle: p.ChapterTitle,
		PageNumber:   p.PageNumber,
		QuranRefs:    p.QuranRefs,
		HadithRefs:   p.HadithRefs,
		Footnotes:    p.Footnotes,
		Concepts:     p.Concepts,
		TokenCount:   p.TokenCount,
	}
	if p.Type == manuscript.TypeHeading || p.Type == manuscript.TypeSubheading {
		out.IsHeading = true
		out.HeadingLevel = p.Level
	}
	if gi, ok := groupOf[p.ID]; ok {
		id := gi
		out.GroupID = &id
	}
	return out
}

// BuildBook assembles the book document. groupOf maps paragraph ID to group
// index; paragraphs missing from it export without a group.
func BuildBook(book manuscript.Book, groupOf map[string]int) BookExport {
	out := BookExport{
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Format:      formatBookJSON,
		Version:     formatVersion,
		Title:       book.Title,
		Author:      book.Author,
		Slug:        book.Slug,
		Description: book.Description,
		SourceFile:  book.SourceFile,
		Paragraphs:  make([]ParagraphExport, 0, len(book.Paragraphs)),
		Groups:      make([]GroupExport, 0, len(book.Groups)),
	}

	for _, p := range book.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, paragraphExport(p, groupOf))
	}

	totalTokens := 0
	for _, g := range book.Groups {
		ids := make([]string, 0, len(g.Paragraphs))
		for _, p := range g.Paragraphs {
			ids = append(ids, p.ID)
		}
		out.Groups = append(out.Groups, GroupExport{
			OrderIndex:   g.OrderIndex,
			TokenCount:   g.TokenCount,
			ParagraphIDs: ids,
		})
		totalTokens += g.TokenCount
	}

	out.Stats = Stats{
		ParagraphCount: len(out.Paragraphs),
		GroupCount:     len(out.Groups),
		TotalTokens:    totalTokens,
	}
	return out
}

// BuildChunks flattens groups into retrieval chunks. Group texts join with a
// blank line.
func BuildChunks(book manuscript.Book) []Chunk {
	chunks := make([]Chunk, 0, len(book.Groups))

	for _, g := range book.Groups {
		var buf bytes.Buffer
		ids := make([]string, 0, len(g.Paragraphs))
		for i, p := range g.Paragraphs {
			if i > 0 {
				buf.WriteString("\n\n")
			}
			buf.WriteString(p.Text)
			ids = append(ids, p.ID)
		}

		meta := ChunkMetadata{
			Source:       book.Slug,
			Title:        book.Title,
			Author:       book.Author,
			ChunkIndex:   g.OrderIndex,
			TokenCount:   g.TokenCount,
			ParagraphIDs: ids,
		}

		chapters := make(map[string]bool)
		for _, p := range g.Paragraphs {
			if p.ChapterTitle != "" {
				chapters[p.ChapterTitle] = true
			}
		}
		if len(chapters) == 1 {
			for title := range chapters {
				meta.Chapter = title
			}
		}

		for _, p := range g.Paragraphs {
			if p.PageNumber == 0 {
				continue
			}
			if meta.PageStart == 0 || p.PageNumber < meta.PageStart {
				meta.PageStart = p.PageNumber
			}
			if p.PageNumber > meta.PageEnd {
				meta.PageEnd = p.PageNumber
			}
		}

		chunks = append(chunks, Chunk{Content: buf.String(), Metadata: meta})
	}
	return chunks
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BookJSON renders the book document format.
func BookJSON(book manuscript.Book, groupOf map[string]int) ([]byte, error) {
	if !Validate(book) {
		return nil, fmt.Errorf("%w: book not exportable", manuscript.ErrInvalidFormat)
	}
	return marshalIndent(BuildBook(book, groupOf))
}

// ChunksJSON renders the flat chunk list format.
func ChunksJSON(book manuscript.Book) ([]byte, error) {
	if !Validate(book) {
		return nil, fmt.Errorf("%w: book not exportable", manuscript.ErrInvalidFormat)
	}
	return marshalIndent(BuildChunks(book))
}

// WriteFiles writes both formats under dir, named by the book slug. Returns
// the two file paths.
func WriteFiles(dir string, book manuscript.Book, groupOf map[string]int) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create export dir: %w", err)
	}

	slug := book.Slug
	if slug == "" {
		slug = "book"
	}

	bookData, err := BookJSON(book, groupOf)
	if err != nil {
		return "", "", err
	}
	chunkData, err := ChunksJSON(book)
	if err != nil {
		return "", "", err
	}

	bookPath := filepath.Join(dir, slug+"_book.json")
	chunksPath := filepath.Join(dir, slug+"_chunks.json")

	if err := os.WriteFile(bookPath, bookData, 0o644); err != nil {
		return "", "", fmt.Errorf("write book json: %w", err)
	}
	if err := os.WriteFile(chunksPath, chunkData, 0o644); err != nil {
		return "", "", fmt.Errorf("write chunks json: %w", err)
	}
	return bookPath, chunksPath, nil
}
