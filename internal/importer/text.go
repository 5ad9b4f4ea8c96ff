package importer

import (
	"bufio"
	"io"
	"strings"

	"github.com/markmind/markmind/internal/mindmap"
)

// TextImporter handles plain text files: each paragraph becomes a
// branch under the root.
type TextImporter struct{}

func (p *TextImporter) Import(r io.Reader, filename string) (*mindmap.Node, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := newTreeBuilder(titleFromFilename(filename, ".txt"))
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			b.addLeaf(current.String())
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.tree(), nil
}
