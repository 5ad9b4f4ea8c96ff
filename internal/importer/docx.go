package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/markmind/markmind/internal/mindmap"
)

// DOCXImporter handles .docx files: Heading-styled paragraphs form the
// outline, body paragraphs become list items.
type DOCXImporter struct{}

func (p *DOCXImporter) Import(r io.Reader, filename string) (*mindmap.Node, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "markmind-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	b := newTreeBuilder(titleFromFilename(filename, ".docx"))

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			b.pushHeading(level, text)
		} else {
			b.addLeaf(text)
		}
	}

	return b.tree(), nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
