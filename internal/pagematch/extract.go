package pagematch

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/infoai1/taliq/internal/manuscript"
)

// Page is the extracted text of one PDF page. Pages with no extractable
// text keep their number and carry empty text.
type Page struct {
	Number     int
	Text       string
	normalized string
}

// ExtractPages reads per-page text from a PDF. A missing path reports
// manuscript.ErrNotFound; a file that cannot be opened as a PDF reports
// manuscript.ErrInvalidFormat.
func ExtractPages(path string) ([]Page, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", manuscript.ErrNotFound, path)
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open pdf: %v", manuscript.ErrInvalidFormat, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		var text string
		page := reader.Page(i)
		if !page.V.IsNull() {
			if t, err := page.GetPlainText(nil); err == nil {
				text = t
			}
		}
		pages = append(pages, Page{
			Number:     i,
			Text:       text,
			normalized: NormalizeText(text),
		})
	}

	return pages, nil
}
