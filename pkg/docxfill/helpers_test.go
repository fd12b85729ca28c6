package docxfill

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// paragraph wraps text in a minimal paragraph with one run
func paragraph(text string) string {
	return `<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

// documentPart wraps body content in a minimal document part
func documentPart(body string) string {
	return xmlDecl + `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`
}

// tableRow wraps cell text in a minimal single-cell table row
func tableRow(cell string) string {
	return `<w:tr><w:tc><w:p><w:r><w:t>` + cell + `</w:t></w:r></w:p></w:tc></w:tr>`
}

// buildDocxBytes assembles an in-memory DOCX package. extraParts maps
// additional part names (e.g. word/header1.xml) to their content.
func buildDocxBytes(t *testing.T, documentXML string, extraParts map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	write := func(name, content string) {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(f, content)
		require.NoError(t, err)
	}

	write("[Content_Types].xml", xmlDecl+`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`)
	write("_rels/.rels", xmlDecl+`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`)
	write("word/document.xml", documentXML)
	for name, content := range extraParts {
		write(name, content)
	}

	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeDocxFile writes an assembled DOCX package into the test temp dir
// and returns its path.
func writeDocxFile(t *testing.T, documentXML string, extraParts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "template.docx")
	require.NoError(t, os.WriteFile(path, buildDocxBytes(t, documentXML, extraParts), 0o644))
	return path
}

// testEngine returns an engine whose working copies live in the test temp
// dir, so failed tests leave nothing behind.
func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	config := DefaultConfig()
	config.WorkDir = t.TempDir()
	all := append([]Option{WithConfig(config)}, opts...)
	return NewWithOptions(all...)
}

// openTestTemplate builds a docx around documentXML and opens it
func openTestTemplate(t *testing.T, documentXML string, extraParts map[string]string) *Template {
	t.Helper()

	tmpl, err := testEngine(t).Open(writeDocxFile(t, documentXML, extraParts))
	require.NoError(t, err)
	t.Cleanup(func() { tmpl.Close() })
	return tmpl
}

// readDocxPart extracts one part from a saved package
func readDocxPart(t *testing.T, path, name string) string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		return string(content)
	}

	t.Fatalf("part %s not found in %s", name, path)
	return ""
}
