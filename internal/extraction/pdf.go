package extraction

import (
	"bytes"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// wordGapRatio is the horizontal gap, relative to the font size, above which
// two glyph runs on the same line are separated by a space.
const wordGapRatio = 0.25

// extractPDF reads visible text page by page. Lines within a page follow the
// glyph baselines; pages are separated by a blank line.
func extractPDF(data []byte) (text string, err error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", &ExtractionError{Format: FormatPDF, Message: "missing %PDF- header"}
	}
	defer recoverInto(FormatPDF, &err)

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to open document", Cause: err}
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", &ExtractionError{Format: FormatPDF, Message: "document has no pages"}
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, pageLines(page.Content().Text))
	}

	return strings.Join(pages, "\n\n"), nil
}

// pageLines rebuilds the text of one page from its glyphs in content order.
// A change of baseline starts a new line; a wide horizontal gap between
// glyphs on the same baseline becomes a space.
func pageLines(glyphs []pdf.Text) string {
	var (
		b    strings.Builder
		prev *pdf.Text
	)
	for i := range glyphs {
		g := &glyphs[i]
		if g.S == "" {
			continue
		}
		if prev != nil {
			size := math.Max(math.Abs(g.FontSize), 1)
			switch {
			case math.Abs(g.Y-prev.Y) > size/2:
				b.WriteByte('\n')
			case g.S != " " && prev.S != " " && g.X-(prev.X+prev.W) > size*wordGapRatio:
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev = g
	}
	return b.String()
}
