package export

import (
	"fmt"

	"github.com/infoai1/taliq/internal/manuscript"
)

// KGEntry is one entity for knowledge-graph ingestion downstream.
type KGEntry struct {
	Type          string `json:"type"`
	EntityName    string `json:"entity_name"`
	EntityType    string `json:"entity_type"`
	Description   string `json:"description"`
	SourceChunkID string `json:"source_chunk_id"`
}

// KGEntries flattens a book into knowledge-graph entities: the book itself
// plus one entry per detected citation, keyed to the chunk it appears in.
func KGEntries(book manuscript.Book) []KGEntry {
	slug := book.Slug
	if slug == "" {
		slug = "book"
	}

	description := book.Description
	if description == "" {
		author := book.Author
		if author == "" {
			author = "Unknown"
		}
		description = fmt.Sprintf("Book by %s", author)
	}

	entries := []KGEntry{{
		Type:          "entity",
		EntityName:    book.Title,
		EntityType:    "BOOK",
		Description:   description,
		SourceChunkID: fmt.Sprintf("book_%s", slug),
	}}

	for _, g := range book.Groups {
		chunkID := fmt.Sprintf("%s_%d", slug, g.OrderIndex)

		for _, p := range g.Paragraphs {
			for _, ref := range p.QuranRefs {
				entries = append(entries, KGEntry{
					Type:          "entity",
					EntityName:    fmt.Sprintf("Quran %d:%d", ref.Surah, ref.AyahStart),
					EntityType:    "QURAN_REF",
					Description:   fmt.Sprintf("Quran reference to Surah %s verse %d", ref.SurahName, ref.AyahStart),
					SourceChunkID: chunkID,
				})
			}
		}
		for _, p := range g.Paragraphs {
			for _, ref := range p.HadithRefs {
				entries = append(entries, KGEntry{
					Type:          "entity",
					EntityName:    fmt.Sprintf("%s %s", ref.CollectionName, ref.Number),
					EntityType:    "HADITH_REF",
					Description:   fmt.Sprintf("Hadith from %s", ref.CollectionName),
					SourceChunkID: chunkID,
				})
			}
		}
	}
	return entries
}
