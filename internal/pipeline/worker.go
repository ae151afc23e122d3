package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/infoai1/taliq/internal/concepts"
	"github.com/infoai1/taliq/internal/config"
	"github.com/infoai1/taliq/internal/export"
	"github.com/infoai1/taliq/internal/footnote"
	"github.com/infoai1/taliq/internal/grouping"
	"github.com/infoai1/taliq/internal/manuscript"
	"github.com/infoai1/taliq/internal/pagematch"
	"github.com/infoai1/taliq/internal/parser"
	"github.com/infoai1/taliq/internal/refs"
)

// Worker processes a single manuscript job end to end.
type Worker struct {
	cfg    config.Config
	tagger *concepts.Tagger
	log    *slog.Logger
}

func NewWorker(cfg config.Config, tagger *concepts.Tagger, log *slog.Logger) *Worker {
	return &Worker{cfg: cfg, tagger: tagger, log: log}
}

// Process runs the full pipeline for a job: parse, page-match, detect
// references, link footnotes, group, export. A page-match failure degrades
// the job to partial instead of failing it; every other stage failure is
// fatal.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "source", job.SourcePath)

	job.SetStatus(StatusParsing, "parsing")
	doc, err := parser.ParseFile(job.SourcePath)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title == "" && doc.Title != "" {
		job.Title = doc.Title
		job.Slug = Slugify(doc.Title)
	}
	if len(doc.Paragraphs) == 0 {
		log.Warn("no paragraphs extracted")
		job.AddError("no extractable content")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	prepareParagraphs(doc)
	job.ContentHash = ContentHashHex([]byte(flattenText(doc)))
	job.SetProgress(func(p *Progress) {
		p.Paragraphs = len(doc.Paragraphs)
		p.Chapters = len(doc.Chapters)
	})
	log.Info("parsed document", "paragraphs", len(doc.Paragraphs), "chapters", len(doc.Chapters))

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	hadErrors := false

	if job.PDFPath != "" {
		job.SetStatus(StatusMatching, "matching pages")
		matches, err := pagematch.MatchBatch(doc.Paragraphs, job.PDFPath, w.cfg.MinPageConfidence)
		if err != nil {
			log.Warn("page matching failed, continuing without pages", "error", err)
			job.AddError(fmt.Sprintf("pagematch: %s", err))
			hadErrors = true
		} else {
			matched := 0
			for i, m := range matches {
				doc.Paragraphs[i].PageNumber = m.PageNumber
				doc.Paragraphs[i].PageConfidence = m.Confidence
				if m.PageNumber > 0 {
					matched++
				}
			}
			job.SetProgress(func(p *Progress) { p.PagesMatched = matched })
			log.Info("page matching complete", "matched", matched, "total", len(matches))
		}
	}

	job.SetStatus(StatusDetecting, "detecting references")
	quranCount, hadithCount := 0, 0
	for i := range doc.Paragraphs {
		para := &doc.Paragraphs[i]
		para.QuranRefs = refs.DetectQuran(para.Text)
		para.HadithRefs = refs.DetectHadith(para.Text)
		quranCount += len(para.QuranRefs)
		hadithCount += len(para.HadithRefs)
	}
	job.SetProgress(func(p *Progress) {
		p.QuranRefs = quranCount
		p.HadithRefs = hadithCount
	})
	log.Info("reference detection complete", "quran", quranCount, "hadith", hadithCount)

	job.SetStatus(StatusLinking, "linking footnotes")
	footnoteCount := linkFootnotes(doc)
	job.SetProgress(func(p *Progress) { p.Footnotes = footnoteCount })
	log.Info("footnote linking complete", "links", footnoteCount)

	if w.cfg.ConceptTagging && w.tagger != nil {
		for i := range doc.Paragraphs {
			doc.Paragraphs[i].Concepts = w.tagger.Tag(doc.Paragraphs[i].Text)
		}
	}

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	job.SetStatus(StatusGrouping, "grouping paragraphs")
	groups := grouping.Groups(doc.Paragraphs, w.cfg.MinGroupTokens, w.cfg.MaxGroupTokens)
	groupOf := grouping.AssignGroups(doc.Paragraphs, groups)
	job.SetProgress(func(p *Progress) { p.Groups = len(groups) })
	log.Info("grouping complete", "groups", len(groups))

	job.SetStatus(StatusExporting, "exporting")
	book := manuscript.Book{
		Title:      job.Title,
		Author:     job.Author,
		Slug:       job.Slug,
		SourceFile: job.SourcePath,
		Paragraphs: doc.Paragraphs,
		Chapters:   doc.Chapters,
		Groups:     groups,
	}
	bookPath, chunksPath, err := export.WriteFiles(w.cfg.ExportDir, book, groupOf)
	if err != nil {
		log.Error("export failed", "error", err)
		job.AddError(fmt.Sprintf("export: %s", err))
		job.SetStatus(StatusFailed, "exporting")
		return
	}
	job.SetOutputs(bookPath, chunksPath)

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("job complete", "status", job.Status, "book", bookPath, "chunks", chunksPath)
}

// prepareParagraphs assigns IDs, stamps chapter titles onto member
// paragraphs, and fills in token counts.
func prepareParagraphs(doc *manuscript.Document) {
	for i := range doc.Paragraphs {
		para := &doc.Paragraphs[i]
		if para.ID == "" {
			para.ID = uuid.NewString()
		}
		if para.TokenCount == 0 {
			para.TokenCount = grouping.CountTokens(para.Text)
		}
	}
	for _, ch := range doc.Chapters {
		for _, idx := range ch.ParagraphIndices {
			doc.Paragraphs[idx].ChapterTitle = ch.Title
		}
	}
}

// looksLikeDefinition reports whether a paragraph opens like a footnote
// definition ("1. ...", "[1] ...", "¹ ...").
func looksLikeDefinition(text string) bool {
	return len(footnote.DetectDefinitions(text)) > 0
}

// linkFootnotes treats the trailing run of definition-shaped paragraphs in
// each chapter as that chapter's footnote block, parses it, and links the
// chapter's body paragraphs against it. Returns the number of links made.
func linkFootnotes(doc *manuscript.Document) int {
	total := 0
	for _, ch := range doc.Chapters {
		// Find where the trailing definition block starts.
		blockStart := len(ch.ParagraphIndices)
		for blockStart > 0 {
			idx := ch.ParagraphIndices[blockStart-1]
			para := doc.Paragraphs[idx]
			if para.Type != manuscript.TypeParagraph || !looksLikeDefinition(para.Text) {
				break
			}
			blockStart--
		}
		if blockStart == len(ch.ParagraphIndices) {
			continue
		}

		var blockText strings.Builder
		for _, idx := range ch.ParagraphIndices[blockStart:] {
			if blockText.Len() > 0 {
				blockText.WriteString("\n")
			}
			blockText.WriteString(doc.Paragraphs[idx].Text)
		}
		defs := footnote.DetectDefinitions(blockText.String())
		if len(defs) == 0 {
			continue
		}

		for _, idx := range ch.ParagraphIndices[:blockStart] {
			para := &doc.Paragraphs[idx]
			links := footnote.Link(para.Text, defs)
			para.Footnotes = links
			total += len(links)
		}
	}
	return total
}

// flattenText joins all paragraph text for content hashing.
func flattenText(doc *manuscript.Document) string {
	var sb strings.Builder
	for _, p := range doc.Paragraphs {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
