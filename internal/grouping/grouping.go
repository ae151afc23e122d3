// Package grouping packs consecutive paragraphs into token-bounded groups
// for chunked export.
package grouping

import (
	"github.com/infoai1/taliq/internal/manuscript"
)

// Default token bounds per group.
const (
	DefaultMinTokens = 512
	DefaultMaxTokens = 800
)

// GroupTokenCount sums the token counts of a paragraph run.
func GroupTokenCount(paragraphs []manuscript.Paragraph) int {
	total := 0
	for _, p := range paragraphs {
		total += p.TokenCount
	}
	return total
}

// Groups packs paragraphs, in order, into groups of minTokens..maxTokens
// tokens. Every paragraph lands in exactly one group. A paragraph larger
// than maxTokens becomes a group of its own. A group under minTokens is
// allowed to run past maxTokens to reach it, and the final group may fall
// short of minTokens when the tail runs out.
//
// Paragraphs with a zero TokenCount get one computed from their text; the
// input slice is not modified.
func Groups(paragraphs []manuscript.Paragraph, minTokens, maxTokens int) []manuscript.Group {
	if len(paragraphs) == 0 {
		return nil
	}

	var groups []manuscript.Group
	var buffer []manuscript.Paragraph
	bufferTokens := 0

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		groups = append(groups, manuscript.Group{
			OrderIndex: len(groups),
			TokenCount: bufferTokens,
			Paragraphs: buffer,
		})
		buffer = nil
		bufferTokens = 0
	}

	for _, para := range paragraphs {
		if para.TokenCount == 0 {
			para.TokenCount = CountTokens(para.Text)
		}

		// An oversized paragraph stands alone.
		if para.TokenCount > maxTokens {
			flush()
			groups = append(groups, manuscript.Group{
				OrderIndex: len(groups),
				TokenCount: para.TokenCount,
				Paragraphs: []manuscript.Paragraph{para},
			})
			continue
		}

		// Flush before overflowing, but only once the buffer has reached
		// the minimum; an undersized buffer absorbs the overflow instead.
		if bufferTokens+para.TokenCount > maxTokens && len(buffer) > 0 && bufferTokens >= minTokens {
			flush()
		}

		buffer = append(buffer, para)
		bufferTokens += para.TokenCount

		if bufferTokens >= minTokens {
			flush()
		}
	}

	flush()
	return groups
}

// AssignGroups maps each paragraph ID to the index of the group that holds
// it. Paragraphs absent from every group are absent from the map.
func AssignGroups(paragraphs []manuscript.Paragraph, groups []manuscript.Group) map[string]int {
	byID := make(map[string]int)
	for gi, g := range groups {
		for _, p := range g.Paragraphs {
			byID[p.ID] = gi
		}
	}
	return byID
}
