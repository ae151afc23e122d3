package parser

import (
	"testing"

	"github.com/infoai1/taliq/internal/manuscript"
)

func TestDetectParagraphType(t *testing.T) {
	tests := []struct {
		style     string
		wantType  manuscript.ParagraphType
		wantLevel int
	}{
		{"Heading 1", manuscript.TypeHeading, 1},
		{"heading 2", manuscript.TypeHeading, 2},
		{"Heading3", manuscript.TypeHeading, 3},
		{"HEADING 1", manuscript.TypeHeading, 1},
		{"Title", manuscript.TypeHeading, 1},
		{"title", manuscript.TypeHeading, 1},
		{"Heading", manuscript.TypeHeading, 1}, // no trailing digit defaults to 1
		{"Quote", manuscript.TypeQuote, 1},
		{"Intense Quote", manuscript.TypeQuote, 1},
		{"IntenseQuote", manuscript.TypeQuote, 1},
		{"Block Text", manuscript.TypeQuote, 1},
		{"BlockText", manuscript.TypeQuote, 1},
		{"Normal", manuscript.TypeParagraph, 1},
		{"Body Text", manuscript.TypeParagraph, 1},
		{"", manuscript.TypeParagraph, 1},
		{"Subtitle", manuscript.TypeParagraph, 1},
	}

	for _, tt := range tests {
		gotType, gotLevel := detectParagraphType(tt.style)
		if gotType != tt.wantType || gotLevel != tt.wantLevel {
			t.Errorf("detectParagraphType(%q) = (%s, %d), want (%s, %d)",
				tt.style, gotType, gotLevel, tt.wantType, tt.wantLevel)
		}
	}
}
