// Package source keeps LaTeX document contents together with the file it was loaded from.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eolymp/go-textree"
)

// Document is LaTeX source held in memory.
type Document struct {
	path     string
	contents string
}

// New creates document which is not backed by a file yet.
func New(path, contents string) *Document {
	return &Document{path: path, contents: contents}
}

// Load reads document from the file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return &Document{path: path, contents: string(data)}, nil
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) Contents() string {
	return d.contents
}

func (d *Document) SetContents(contents string) {
	d.contents = contents
}

// Parse builds tree for the current contents.
func (d *Document) Parse() (*latex.Tree, error) {
	tree, err := latex.Parse(d.contents)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.path, err)
	}

	return tree, nil
}

// Save writes contents back to the document path, creating parent directories if needed.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("document has no path")
	}

	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(d.path, []byte(d.contents), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}
