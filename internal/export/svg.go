package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/markmind/markmind/internal/layout"
)

const (
	svgMargin       = 24.0
	nodeCornerR     = 6.0
	edgeStrokeWidth = 2.0
	fontFamily      = "Helvetica, Arial, sans-serif"
)

// branchPalette colors top-level branches; the branch index selects a
// color that every descendant of that branch shares.
var branchPalette = []string{
	"#e5534b", "#e8a03c", "#3fb950", "#2f81f7",
	"#a371f7", "#db61a2", "#39c5cf", "#d29922",
}

func branchColor(index int) string {
	if index < 0 {
		index = 0
	}
	return branchPalette[index%len(branchPalette)]
}

// svgBounds tracks the extent of drawn geometry for the final viewBox.
type svgBounds struct {
	minX, maxX, minY, maxY float64
	set                    bool
}

func (b *svgBounds) updateRect(x, y, w, h float64) {
	if !b.set {
		b.minX, b.maxX = x, x+w
		b.minY, b.maxY = y, y+h
		b.set = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x+w)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y+h)
}

// SVG renders the positioned tree as a standalone SVG document. Pass
// the same Config the layout was computed with so text metrics line up.
func SVG(root *layout.LayoutNode, cfg layout.Config) []byte {
	var body bytes.Buffer
	var b svgBounds

	// Edges first so nodes paint over them.
	drawEdges(&body, root)
	drawNode(&body, &b, root, cfg)

	if !b.set {
		b.updateRect(0, 0, 1, 1)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" font-family="%s">`+"\n",
		b.minX-svgMargin, b.minY-svgMargin,
		b.maxX-b.minX+2*svgMargin, b.maxY-b.minY+2*svgMargin,
		fontFamily)
	out.Write(body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// drawEdges emits a cubic curve from each node's right edge to every
// child's left edge.
func drawEdges(body *bytes.Buffer, n *layout.LayoutNode) {
	x1 := n.X + n.Width
	y1 := n.Y + n.Height/2
	for _, c := range n.Children {
		x2 := c.X
		y2 := c.Y + c.Height/2
		midX := (x1 + x2) / 2
		fmt.Fprintf(body,
			`<path d="M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			x1, y1, midX, y1, midX, y2, x2, y2, branchColor(c.BranchIndex), edgeStrokeWidth)
		drawEdges(body, c)
	}
}

func drawNode(body *bytes.Buffer, b *svgBounds, n *layout.LayoutNode, cfg layout.Config) {
	b.updateRect(n.X, n.Y, n.Width, n.Height)
	color := branchColor(n.BranchIndex)
	if n.Depth == 0 {
		color = "#57606a"
	}

	fmt.Fprintf(body,
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="#ffffff" stroke="%s" stroke-width="1.5"/>`+"\n",
		n.X, n.Y, n.Width, n.Height, nodeCornerR, color)

	fontSize := cfg.FontSize(n.Depth)
	lineHeight := fontSize * cfg.LineHeightRatio
	for i, line := range n.TextLines {
		// Baseline sits roughly 80% into the line box.
		y := n.Y + cfg.PaddingY + float64(i)*lineHeight + 0.8*lineHeight
		fmt.Fprintf(body,
			`<text x="%.1f" y="%.1f" font-size="%.1f" fill="#1f2328">%s</text>`+"\n",
			n.X+cfg.PaddingX, y, fontSize, escapeText(line))
	}

	if n.Image != "" {
		drawImage(body, n, cfg)
	}

	if n.Collapsed && n.HasChildren {
		drawExpandBadge(body, b, n, color)
	}

	for _, c := range n.Children {
		drawNode(body, b, c, cfg)
	}
}

func drawImage(body *bytes.Buffer, n *layout.LayoutNode, cfg layout.Config) {
	w := cfg.ImageDefaultWidth
	if n.ImageWidth > 0 {
		w = float64(n.ImageWidth)
	}
	h := cfg.ImageDefaultHeight
	if n.ImageHeight > 0 {
		h = float64(n.ImageHeight)
	}
	y := n.Y + n.Height - cfg.PaddingY - h
	fmt.Fprintf(body,
		`<image x="%.1f" y="%.1f" width="%.1f" height="%.1f" href="%s" preserveAspectRatio="xMidYMid meet"/>`+"\n",
		n.X+cfg.PaddingX, y, w, h, escapeText(n.Image))
}

// drawExpandBadge marks a collapsed node that has hidden children.
func drawExpandBadge(body *bytes.Buffer, b *svgBounds, n *layout.LayoutNode, color string) {
	cx := n.X + n.Width + 8
	cy := n.Y + n.Height/2
	b.updateRect(cx-8, cy-8, 16, 16)
	fmt.Fprintf(body,
		`<circle cx="%.1f" cy="%.1f" r="8" fill="#ffffff" stroke="%s" stroke-width="1.5"/>`+"\n",
		cx, cy, color)
	fmt.Fprintf(body,
		`<text x="%.1f" y="%.1f" font-size="12" text-anchor="middle" fill="%s">+</text>`+"\n",
		cx, cy+4, color)
}

func escapeText(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
