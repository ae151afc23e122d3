package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/infoai1/taliq/internal/manuscript"
)

// MarkdownParser handles Markdown manuscripts using goldmark. Headings map
// to heading paragraphs at their markdown level, blockquotes to quote
// paragraphs, and every other block to a plain paragraph.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*manuscript.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var paragraphs []manuscript.Paragraph
	orderIndex := 0

	appendPara := func(t string, ptype manuscript.ParagraphType, level int) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		paragraphs = append(paragraphs, manuscript.Paragraph{
			Text:       t,
			Type:       ptype,
			Level:      level,
			OrderIndex: orderIndex,
		})
		orderIndex++
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			appendPara(string(node.Text(src)), manuscript.TypeHeading, node.Level)
		case *ast.Blockquote:
			appendPara(extractText(node, src), manuscript.TypeQuote, 1)
		default:
			appendPara(extractText(n, src), manuscript.TypeParagraph, 1)
		}
	}

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown")
	return &manuscript.Document{
		Title:      title,
		Paragraphs: paragraphs,
		Chapters:   manuscript.BuildChapters(paragraphs),
	}, nil
}

// extractText gets the text content of a goldmark AST node. Blocks with
// their own source lines read those directly; container blocks concatenate
// their children, one per line.
func extractText(n ast.Node, src []byte) string {
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}

	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else if s := extractText(c, src); s != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(s)
		}
	}
	return strings.TrimSpace(buf.String())
}
