package docxfill

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const documentPartName = "word/document.xml"

func headerPartName(index int) string {
	return fmt.Sprintf("word/header%d.xml", index)
}

func footerPartName(index int) string {
	return fmt.Sprintf("word/footer%d.xml", index)
}

// Template is the mutable state of one document being filled: a private
// working copy of the source package, its container, and the raw text of
// the document, header and footer parts. All operations mutate these part
// buffers in place; a Template must not be shared between goroutines.
type Template struct {
	container   Container
	workingPath string
	keepWorking bool
	transformer StyleTransformer

	document string
	headers  []string // headers[i] is word/header{i+1}.xml
	footers  []string // footers[i] is word/footer{i+1}.xml

	saved bool
	log   *Logger
}

// Open creates a Template from the package at path using the default engine.
func Open(path string) (*Template, error) {
	return DefaultEngine.Open(path)
}

// open copies the source package to a private working file and loads its
// parts. The working file is removed on every failed path so a partially
// failed open leaves nothing behind.
func open(path string, config *Config, transformer StyleTransformer) (*Template, error) {
	workDir := config.WorkDir
	if workDir == "" {
		workDir = os.TempDir()
	}

	workingPath := filepath.Join(workDir, "docxfill-"+uuid.NewString()+filepath.Ext(path))
	if err := copyFile(path, workingPath); err != nil {
		os.Remove(workingPath)
		return nil, err
	}

	container, err := openZipContainer(workingPath)
	if err != nil {
		os.Remove(workingPath)
		return nil, err
	}

	t := &Template{
		container:   container,
		workingPath: workingPath,
		keepWorking: config.KeepWorking,
		transformer: transformer,
		log:         GetLogger().WithField("working", workingPath),
	}

	t.document, err = container.GetFromName(documentPartName)
	if err != nil {
		os.Remove(workingPath)
		return nil, err
	}

	// Header and footer parts are numbered from 1 and probed until a name
	// is absent.
	for i := 1; container.LocateName(headerPartName(i)); i++ {
		text, err := container.GetFromName(headerPartName(i))
		if err != nil {
			os.Remove(workingPath)
			return nil, err
		}
		t.headers = append(t.headers, text)
	}
	for i := 1; container.LocateName(footerPartName(i)); i++ {
		text, err := container.GetFromName(footerPartName(i))
		if err != nil {
			os.Remove(workingPath)
			return nil, err
		}
		t.footers = append(t.footers, text)
	}

	t.log.Debug("opened template %s: %d headers, %d footers", path, len(t.headers), len(t.footers))
	return t, nil
}

// partTexts returns pointers to every held part text: document first, then
// headers, then footers.
func (t *Template) partTexts() []*string {
	parts := make([]*string, 0, 1+len(t.headers)+len(t.footers))
	parts = append(parts, &t.document)
	for i := range t.headers {
		parts = append(parts, &t.headers[i])
	}
	for i := range t.footers {
		parts = append(parts, &t.footers[i])
	}
	return parts
}

// partText resolves a part key ("document", "header:N", "footer:N") to the
// held text buffer.
func (t *Template) partText(key string) (*string, bool) {
	if key == "document" {
		return &t.document, true
	}

	kind, num, found := strings.Cut(key, ":")
	if !found {
		return nil, false
	}
	index, err := strconv.Atoi(num)
	if err != nil || index < 1 {
		return nil, false
	}

	switch kind {
	case "header":
		if index <= len(t.headers) {
			return &t.headers[index-1], true
		}
	case "footer":
		if index <= len(t.footers) {
			return &t.footers[index-1], true
		}
	}
	return nil, false
}

// Part returns the raw text of the part with the given key ("document",
// "header:N", "footer:N"); ok is false for an unknown key.
func (t *Template) Part(key string) (string, bool) {
	part, ok := t.partText(key)
	if !ok {
		return "", false
	}
	return *part, true
}

// SetPart replaces the raw text of the part with the given key; it reports
// whether the key resolved to a held part.
func (t *Template) SetPart(key, text string) bool {
	part, ok := t.partText(key)
	if !ok {
		return false
	}
	*part = text
	return true
}

// Save writes all held part texts back into the container (document, then
// headers, then footers), closes it and returns the working file path. The
// in-memory part buffers are not rolled back on failure, so a retried save
// re-serializes the same mutated state.
func (t *Template) Save() (string, error) {
	t.container.AddFromString(documentPartName, t.document)
	for i, text := range t.headers {
		t.container.AddFromString(headerPartName(i+1), text)
	}
	for i, text := range t.footers {
		t.container.AddFromString(footerPartName(i+1), text)
	}

	if err := t.container.Close(); err != nil {
		return "", err
	}

	t.saved = true
	t.log.Debug("saved template to working file")
	return t.workingPath, nil
}

// SaveAs removes orphaned placeholder markers, saves the template, and
// replaces any existing file at dest with the result.
func (t *Template) SaveAs(dest string) error {
	t.RemoveOrphanTags()

	path, err := t.Save()
	if err != nil {
		return err
	}

	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return NewIOError("replace", dest, err)
	}

	if t.keepWorking {
		if err := copyFile(path, dest); err != nil {
			return err
		}
		t.log.Debug("kept working file, copied to %s", dest)
		return nil
	}

	if err := os.Rename(path, dest); err != nil {
		// Rename fails across devices; fall back to copy and remove.
		if err := copyFile(path, dest); err != nil {
			return err
		}
		os.Remove(path)
	}

	t.log.Debug("saved template to %s", dest)
	return nil
}

// Close removes the working file of a template that is being abandoned
// without a save. Closing after Save or SaveAs is a no-op.
func (t *Template) Close() error {
	if t.saved {
		return nil
	}
	t.saved = true
	if err := os.Remove(t.workingPath); err != nil && !os.IsNotExist(err) {
		return NewIOError("remove", t.workingPath, err)
	}
	return nil
}

// copyFile copies src to dst, truncating any existing file at dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return NewIOError("copy", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return NewIOError("create", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return NewIOError("copy", dst, err)
	}
	if err := out.Close(); err != nil {
		return NewIOError("copy", dst, err)
	}
	return nil
}
