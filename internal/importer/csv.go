package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/markmind/markmind/internal/mindmap"
)

// CSVImporter handles CSV files: each data row becomes a branch titled
// by its first cell, with the remaining cells as "header: value" items.
type CSVImporter struct{}

func (p *CSVImporter) Import(r io.Reader, filename string) (*mindmap.Node, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	b := newTreeBuilder(titleFromFilename(filename, ".csv"))
	if len(records) == 0 {
		return b.tree(), nil
	}

	// First row is headers.
	headers := records[0]

	for i, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		title := row[0]
		if title == "" {
			title = fmt.Sprintf("Row %d", i+2) // 1-indexed, skip header
		}
		branch := b.pushHeading(1, title)
		for j, cell := range row[1:] {
			if cell == "" {
				continue
			}
			label := cell
			if j+1 < len(headers) {
				label = headers[j+1] + ": " + cell
			}
			branch.AddChild(mindmap.New(flatten(label), 0))
		}
	}

	return b.tree(), nil
}
