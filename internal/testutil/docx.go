// Package testutil builds document fixtures for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

// BuildDocx assembles a minimal DOCX package with one paragraph per line.
func BuildDocx(t testing.TB, lines ...string) []byte {
	t.Helper()

	var body strings.Builder
	body.WriteString(documentHeader)
	for _, line := range lines {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(html.EscapeString(line))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	files := []struct{ name, body string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
		{"word/document.xml", body.String()},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// WriteDocx writes a DOCX built from lines into dir and returns its path.
func WriteDocx(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, BuildDocx(t, lines...), 0644))
	return path
}

// WriteText writes content into dir and returns its path.
func WriteText(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// SampleResume is a small resume used across package tests.
var SampleResume = []string{
	"Jane Doe",
	"jane.doe@example.com | (555) 123-4567",
	"",
	"SUMMARY",
	"Backend engineer who likes Go and Kubernetes.",
	"",
	"WORK EXPERIENCE",
	"Senior Engineer, Acme Corp (2019 - 2023)",
	"Built Python services on AWS",
	"Engineer, Initech 2016 - 2019",
	"",
	"EDUCATION",
	"B.S. Computer Science, State University, 2016",
	"",
	"SKILLS",
	"Docker, PostgreSQL",
}

// SampleJob is a job description matching SampleResume on two of three skills.
const SampleJob = `Senior Backend Engineer

We need 5+ years of experience with Python, Go and Terraform.
Bachelor's degree required.
`
