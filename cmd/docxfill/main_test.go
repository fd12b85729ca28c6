package main

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtureDocx(t *testing.T, body string) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = io.WriteString(f, `<?xml version="1.0"?><w:document><w:body>`+body+`</w:body></w:document>`)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "fixture.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestVarsCommand(t *testing.T) {
	path := writeFixtureDocx(t, `<w:p><w:r><w:t>${a} ${b} ${a}</w:t></w:r></w:p>`)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"vars", path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "a\nb\n", out.String())
}

func TestFillCommand(t *testing.T) {
	path := writeFixtureDocx(t, `<w:p><w:r><w:t>Dear ${name}</w:t></w:r></w:p>`)

	dataFile := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(dataFile, []byte("name: Alice\n"), 0o644))
	dest := filepath.Join(t.TempDir(), "out.docx")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"fill", path, "-o", dest, "--data", dataFile})
	require.NoError(t, cmd.Execute())

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Contains(t, string(content), "Dear Alice")
		return
	}
	t.Fatal("word/document.xml missing from output")
}

func TestLoadValues(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		values, err := loadValues("")
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadValues(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- not a mapping"), 0o644))
		_, err := loadValues(path)
		require.Error(t, err)
	})

	t.Run("mapping", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "values.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: Alice\ncity: Lisbon\n"), 0o644))

		values, err := loadValues(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"name": "Alice", "city": "Lisbon"}, values)
	})
}
