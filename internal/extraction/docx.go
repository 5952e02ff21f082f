package extraction

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// oleMagic is the header of legacy binary (pre-2007) Word files.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// extractWord reads an OOXML Word document. Paragraph and table text is
// returned in document order.
func extractWord(data []byte, format Format) (text string, err error) {
	if bytes.HasPrefix(data, oleMagic) {
		return "", &ExtractionError{Format: format, Message: "legacy binary Word documents are not supported"}
	}
	defer recoverInto(format, &err)

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: format, Message: "not a readable Word document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	text, err = documentText(doc.Editable().GetContent())
	if err != nil {
		return "", &ExtractionError{Format: format, Message: "malformed document.xml", Cause: err}
	}
	return text, nil
}

// documentText walks WordprocessingML and renders it as plain text: every
// paragraph ends a line, tabs and breaks are kept, and each table row becomes
// one line with its cells separated by " | ".
func documentText(documentXML string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))
	w := &wordWalker{out: []*strings.Builder{{}}}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			w.start(t.Name.Local)
		case xml.EndElement:
			w.end(t.Name.Local)
		case xml.CharData:
			if w.inText > 0 {
				w.current().Write(t)
			}
		}
	}

	return w.out[0].String(), nil
}

type wordWalker struct {
	out    []*strings.Builder // innermost table cell last
	rows   [][]string
	inText int
	inTabs int // inside <w:tabs> tab-stop definitions
}

func (w *wordWalker) current() *strings.Builder {
	return w.out[len(w.out)-1]
}

func (w *wordWalker) start(name string) {
	switch name {
	case "t":
		w.inText++
	case "tabs":
		w.inTabs++
	case "tab":
		if w.inTabs == 0 {
			w.current().WriteByte('\t')
		}
	case "br", "cr":
		w.current().WriteByte('\n')
	case "tr":
		w.rows = append(w.rows, nil)
	case "tc":
		w.out = append(w.out, &strings.Builder{})
	}
}

func (w *wordWalker) end(name string) {
	switch name {
	case "t":
		if w.inText > 0 {
			w.inText--
		}
	case "tabs":
		if w.inTabs > 0 {
			w.inTabs--
		}
	case "p":
		w.current().WriteByte('\n')
	case "tc":
		if len(w.out) == 1 {
			return
		}
		cell := strings.Join(strings.Fields(w.current().String()), " ")
		w.out = w.out[:len(w.out)-1]
		if n := len(w.rows); n > 0 {
			w.rows[n-1] = append(w.rows[n-1], cell)
		}
	case "tr":
		n := len(w.rows)
		if n == 0 {
			return
		}
		row := w.rows[n-1]
		w.rows = w.rows[:n-1]
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			return
		}
		w.current().WriteString(strings.Join(row, " | "))
		w.current().WriteByte('\n')
	}
}
