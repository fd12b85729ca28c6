package docxfill

import (
	"archive/zip"
	"errors"
	"io"
	"os"
)

// Container abstracts the zip-like package that stores the document parts.
// Implementations hold every entry so that Close can write the package back
// with untouched entries preserved byte-for-byte.
type Container interface {
	// LocateName reports whether a part with the given name exists.
	LocateName(name string) bool
	// GetFromName returns the raw text of a named part.
	GetFromName(name string) (string, error)
	// AddFromString stores (or overrides) a named part.
	AddFromString(name, content string)
	// Close writes the package back to its backing file and releases it.
	Close() error
}

// zipContainer is the zip-backed Container used for DOCX packages. All
// entries are read into memory on open; entry order is preserved so the
// written package keeps the original part layout.
type zipContainer struct {
	path    string
	order   []string
	entries map[string][]byte
	closed  bool
}

// openZipContainer opens the package at path as a mutable container
func openZipContainer(path string) (*zipContainer, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, NewPackageError("open", path, err)
	}
	defer zr.Close()

	c := &zipContainer{
		path:    path,
		entries: make(map[string][]byte),
	}

	for _, file := range zr.File {
		rc, err := file.Open()
		if err != nil {
			return nil, NewPackageError("read", file.Name, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, NewPackageError("read", file.Name, err)
		}

		c.order = append(c.order, file.Name)
		c.entries[file.Name] = content
	}

	return c, nil
}

func (c *zipContainer) LocateName(name string) bool {
	_, ok := c.entries[name]
	return ok
}

func (c *zipContainer) GetFromName(name string) (string, error) {
	content, ok := c.entries[name]
	if !ok {
		return "", NewPackageError("extract", name, errors.New("part not found"))
	}
	return string(content), nil
}

func (c *zipContainer) AddFromString(name, content string) {
	if _, ok := c.entries[name]; !ok {
		c.order = append(c.order, name)
	}
	c.entries[name] = []byte(content)
}

func (c *zipContainer) Close() error {
	if c.closed {
		return NewPackageError("close", c.path, errors.New("container already closed"))
	}

	out, err := os.Create(c.path)
	if err != nil {
		return NewPackageError("close", c.path, err)
	}

	w := zip.NewWriter(out)
	for _, name := range c.order {
		fw, err := w.Create(name)
		if err != nil {
			out.Close()
			return NewPackageError("write", name, err)
		}
		if _, err := fw.Write(c.entries[name]); err != nil {
			out.Close()
			return NewPackageError("write", name, err)
		}
	}

	if err := w.Close(); err != nil {
		out.Close()
		return NewPackageError("close", c.path, err)
	}
	if err := out.Close(); err != nil {
		return NewPackageError("close", c.path, err)
	}

	c.closed = true
	return nil
}
