package docxfill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneRow(t *testing.T) {
	body := "A${name}B" + tableRow("${row}") + "C"
	tmpl := openTestTemplate(t, documentPart(body), nil)

	require.NoError(t, tmpl.CloneRow("row", 3))

	doc, _ := tmpl.Part("document")
	assert.Equal(t, 3, strings.Count(doc, "<w:tr>"), "exactly three rows")
	assert.NotContains(t, doc, "${row}", "bare placeholder consumed")
	for _, want := range []string{"${row#1}", "${row#2}", "${row#3}"} {
		assert.Equal(t, 1, strings.Count(doc, want), want)
	}
}

func TestCloneRowPreservesSurroundingText(t *testing.T) {
	body := "A${name}B" + tableRow("${row}") + "C"
	tmpl := openTestTemplate(t, documentPart(body), nil)

	tmpl.SetValue("name", "Alice")
	require.NoError(t, tmpl.CloneRow("row", 2))

	doc, _ := tmpl.Part("document")
	assert.Equal(t, 1, strings.Count(doc, "Alice"), "scalar filled once")
	assert.Equal(t, 2, strings.Count(doc, "<w:tr>"), "two rows")
	assert.Equal(t, 1, strings.Count(doc, "${row#1}"))
	assert.Equal(t, 1, strings.Count(doc, "${row#2}"))
	assert.Equal(t, 1, strings.Count(doc, "AAliceB"), "prefix text intact and un-duplicated")
	assert.Equal(t, 1, strings.Count(doc, "C</w:body>"), "suffix text intact and un-duplicated")
}

func TestCloneRowVerticalMergeSpan(t *testing.T) {
	restart := `<w:tr><w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p><w:r><w:t>${span}</w:t></w:r></w:p></w:tc></w:tr>`
	cont := `<w:tr><w:tc><w:tcPr><w:vMerge w:val="continue"/></w:tcPr><w:p/></w:tc></w:tr>`
	implicit := `<w:tr><w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc></w:tr>`
	plain := tableRow("after")

	body := restart + cont + implicit + plain
	tmpl := openTestTemplate(t, documentPart(body), nil)

	require.NoError(t, tmpl.CloneRow("span", 2))

	doc, _ := tmpl.Part("document")
	// 3-row span cloned twice plus the untouched trailing row.
	assert.Equal(t, 7, strings.Count(doc, "<w:tr>"))
	assert.Equal(t, 2, strings.Count(doc, `<w:vMerge w:val="restart"`))
	assert.Equal(t, 1, strings.Count(doc, "${span#1}"))
	assert.Equal(t, 1, strings.Count(doc, "${span#2}"))
	assert.Equal(t, 1, strings.Count(doc, ">after<"), "non-continuing row not cloned")
}

func TestCloneRowMergeSpanAtDocumentEnd(t *testing.T) {
	restart := `<w:tr><w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p><w:r><w:t>${span}</w:t></w:r></w:p></w:tc></w:tr>`
	implicit := `<w:tr><w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc></w:tr>`

	tmpl := openTestTemplate(t, documentPart(restart+implicit), nil)

	require.NoError(t, tmpl.CloneRow("span", 1))

	doc, _ := tmpl.Part("document")
	assert.Equal(t, 2, strings.Count(doc, "<w:tr>"), "span ends where the rows end")
	assert.Equal(t, 1, strings.Count(doc, "${span#1}"))
}

func TestCloneRowErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		search string
	}{
		{
			name:   "placeholder absent",
			body:   tableRow("${other}"),
			search: "missing",
		},
		{
			name:   "placeholder outside any row",
			body:   paragraph("${loose}"),
			search: "loose",
		},
		{
			name:   "fragmented placeholder not found",
			body:   `<w:tr><w:tc><w:p><w:r><w:t>${ro</w:t></w:r><w:r><w:t>w}</w:t></w:r></w:p></w:tc></w:tr>`,
			search: "row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := openTestTemplate(t, documentPart(tt.body), nil)

			before, _ := tmpl.Part("document")
			err := tmpl.CloneRow(tt.search, 2)
			require.Error(t, err)
			assert.True(t, IsNotFoundError(err), "expected NotFoundError, got %v", err)

			after, _ := tmpl.Part("document")
			assert.Equal(t, before, after, "failed clone must not mutate")
		})
	}
}
