// Package importer converts foreign document formats into mindmap node
// trees. Each importer produces a tree rooted at a level-1 node titled
// from the document, with branches built from the document's own
// structure (headings, lists, pages, rows).
package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/markmind/markmind/internal/mindmap"
)

// Importer converts raw document bytes into a mindmap tree.
type Importer interface {
	Import(r io.Reader, filename string) (*mindmap.Node, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate importer for a filename.
func ForFile(filename string) (Importer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownImporter{}, nil
	case ".txt":
		return &TextImporter{}, nil
	case ".csv":
		return &CSVImporter{}, nil
	case ".html", ".htm":
		return &HTMLImporter{}, nil
	case ".pdf":
		return &PDFImporter{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXImporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// titleFromFilename strips known extensions to produce a root label.
func titleFromFilename(filename string, exts ...string) string {
	for _, ext := range exts {
		filename = strings.TrimSuffix(filename, ext)
	}
	if filename == "" {
		return mindmap.DefaultRootText
	}
	return filename
}

// flatten collapses all whitespace runs to single spaces so imported
// text stays on one dialect line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
