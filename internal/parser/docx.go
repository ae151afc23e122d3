package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/infoai1/taliq/internal/manuscript"
)

// DOCXParser handles .docx manuscripts.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*manuscript.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "taliq-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: parse docx: %v", manuscript.ErrInvalidFormat, err)
	}

	var paragraphs []manuscript.Paragraph
	orderIndex := 0

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := docxParagraphText(para)
		if text == "" {
			// Whitespace-only paragraphs do not consume an order index.
			continue
		}

		style := docxStyleName(para)
		ptype, level := detectParagraphType(style)

		paragraphs = append(paragraphs, manuscript.Paragraph{
			Text:       text,
			Type:       ptype,
			Level:      level,
			OrderIndex: orderIndex,
			StyleName:  style,
		})
		orderIndex++
	}

	return &manuscript.Document{
		Title:      strings.TrimSuffix(filename, ".docx"),
		Paragraphs: paragraphs,
		Chapters:   manuscript.BuildChapters(paragraphs),
	}, nil
}

func docxStyleName(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
