package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/infoai1/taliq/internal/manuscript"
)

// HTMLParser handles HTML manuscripts. h1-h6 map to heading paragraphs,
// blockquote to quote paragraphs, and p/li/td to plain paragraphs.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*manuscript.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", manuscript.ErrInvalidFormat, err)
	}

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm")
	if t := findTitle(doc); t != "" {
		title = t
	}

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

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				appendPara(textContent(n), manuscript.TypeHeading, level)
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "blockquote":
				appendPara(textContent(n), manuscript.TypeQuote, 1)
				return
			case "p", "li", "td":
				appendPara(textContent(n), manuscript.TypeParagraph, 1)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return &manuscript.Document{
		Title:      title,
		Paragraphs: paragraphs,
		Chapters:   manuscript.BuildChapters(paragraphs),
	}, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func findTitle(doc *html.Node) string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			title = strings.TrimSpace(textContent(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
