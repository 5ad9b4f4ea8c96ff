package layout

import "github.com/markmind/markmind/internal/mindmap"

// Measurement is the computed size of a single node box.
type Measurement struct {
	Width     float64
	Height    float64
	TextLines []string
}

// WrapText slices text into fixed-length rune chunks so that each line
// fits maxWidth at the given font size. There is no word-boundary
// awareness; mid-word breaks are expected. The chunks always
// concatenate back to the original text.
func WrapText(text string, fontSize, maxWidth float64, cfg Config) []string {
	charWidth := fontSize * cfg.CharWidthRatio
	perLine := int(maxWidth / charWidth)
	if perLine < 1 {
		perLine = 1
	}

	runes := []rune(text)
	if len(runes) <= perLine {
		return []string{text}
	}

	var lines []string
	for start := 0; start < len(runes); start += perLine {
		end := start + perLine
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}

// Measure computes the box size for a node at the given depth. Width is
// estimated from rune count, clamped to MaxNodeWidth with wrapping, and
// widened to fit an attached image thumbnail.
func Measure(n *mindmap.Node, depth int, cfg Config) Measurement {
	fontSize := cfg.FontSize(depth)
	charWidth := fontSize * cfg.CharWidthRatio

	width := float64(len([]rune(n.Text)))*charWidth + 2*cfg.PaddingX
	lines := []string{n.Text}
	if width > cfg.MaxNodeWidth {
		lines = WrapText(n.Text, fontSize, cfg.MaxNodeWidth-2*cfg.PaddingX, cfg)
		width = cfg.MaxNodeWidth
	}

	height := float64(len(lines))*fontSize*cfg.LineHeightRatio + 2*cfg.PaddingY

	if n.Image != "" {
		imageHeight := cfg.ImageDefaultHeight
		if n.ImageHeight > 0 {
			imageHeight = float64(n.ImageHeight)
		}
		height += imageHeight + cfg.ImagePadding

		imageWidth := cfg.ImageDefaultWidth
		if n.ImageWidth > 0 {
			imageWidth = float64(n.ImageWidth)
		}
		if w := imageWidth + 2*cfg.PaddingX; w > width {
			width = w
		}
	}

	return Measurement{Width: width, Height: height, TextLines: lines}
}
