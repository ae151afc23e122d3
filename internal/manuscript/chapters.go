package manuscript

// DefaultChapterTitle names the synthetic chapter used when a document has
// no level-1 headings at all.
const DefaultChapterTitle = "Main Content"

// BuildChapters segments a flat paragraph list into chapters. Every heading
// of level exactly 1 starts a new chapter and is its first member; following
// paragraphs belong to it until the next level-1 heading. Paragraphs before
// the first level-1 heading stay in the flat list but join no chapter,
// unless the document has no level-1 headings, in which case a single
// default chapter claims everything.
func BuildChapters(paragraphs []Paragraph) []Chapter {
	var chapters []Chapter
	current := -1

	for _, para := range paragraphs {
		if para.Type == TypeHeading && para.Level == 1 {
			chapters = append(chapters, Chapter{
				Title:            para.Text,
				OrderIndex:       len(chapters),
				ParagraphIndices: []int{para.OrderIndex},
			})
			current = len(chapters) - 1
		} else if current >= 0 {
			chapters[current].ParagraphIndices = append(chapters[current].ParagraphIndices, para.OrderIndex)
		}
	}

	if len(chapters) == 0 && len(paragraphs) > 0 {
		indices := make([]int, len(paragraphs))
		for i := range paragraphs {
			indices[i] = paragraphs[i].OrderIndex
		}
		chapters = []Chapter{{
			Title:            DefaultChapterTitle,
			OrderIndex:       0,
			ParagraphIndices: indices,
		}}
	}

	return chapters
}
