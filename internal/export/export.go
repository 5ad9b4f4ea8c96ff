// Package export renders positioned layout trees to output formats.
// The layout engine owns all geometry; exporters only draw what they
// are given.
package export

import (
	"fmt"

	"github.com/markmind/markmind/internal/layout"
)

// Format identifies an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Export renders the tree in the requested format and returns the data
// with its media type.
func Export(format Format, root *layout.LayoutNode, cfg layout.Config) ([]byte, string, error) {
	switch format {
	case FormatSVG:
		return SVG(root, cfg), "image/svg+xml", nil
	case FormatJSON:
		data, err := JSON(root)
		return data, "application/json", err
	default:
		return nil, "", fmt.Errorf("unsupported export format: %s", format)
	}
}
