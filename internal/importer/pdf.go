package importer

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/markmind/markmind/internal/mindmap"
)

// PDFImporter handles PDF files. PDFs carry no reliable outline, so the
// tree is a page-per-branch overview: each page becomes a section with
// its paragraphs as items. Tries the Go library first, then falls back
// to pdftotext if available.
type PDFImporter struct {
	FallbackPdftotext bool
}

func (p *PDFImporter) Import(r io.Reader, filename string) (*mindmap.Node, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "markmind-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractPDFText(tmpPath)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	b := newTreeBuilder(titleFromFilename(filename, ".pdf"))

	for i, page := range strings.Split(text, "\f") {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		b.pushHeading(1, fmt.Sprintf("Page %d", i+1))
		for _, para := range splitParagraphs(page) {
			b.addLeaf(para)
		}
	}

	return b.tree(), nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

// splitParagraphs splits on blank lines, dropping empties.
func splitParagraphs(text string) []string {
	var paras []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}
