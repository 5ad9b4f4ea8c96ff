package layout

import "github.com/markmind/markmind/internal/mindmap"

// LayoutNode is a positioned, read-only view of a mindmap node for one
// render pass. It is rebuilt from scratch on every layout and holds no
// back-reference to the model tree.
type LayoutNode struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	TextLines    []string `json:"textLines"`
	HeadingLevel int      `json:"headingLevel"`
	Collapsed    bool     `json:"collapsed,omitempty"`

	Image       string `json:"image,omitempty"`
	ImageWidth  int    `json:"imageWidth,omitempty"`
	ImageHeight int    `json:"imageHeight,omitempty"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  int     `json:"depth"`
	// BranchIndex identifies the root child this node descends from.
	// Renderers use it as a stable color/grouping key for the whole
	// top-level branch.
	BranchIndex int     `json:"branchIndex"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`

	// HasChildren reflects the model, not the layout: a collapsed node
	// has an empty Children slice here but still reports true, so
	// callers can render an expand affordance.
	HasChildren bool          `json:"hasChildren"`
	Children    []*LayoutNode `json:"children"`
}

// LayoutAt builds a measured layout tree for root and positions it with
// its top-left band anchored at (originX, originY). The returned tree
// is complete; callers never observe unpositioned nodes.
func LayoutAt(root *mindmap.Node, originX, originY float64, cfg Config) *LayoutNode {
	cfg = cfg.normalized()
	ln := build(root, 0, 0, cfg)
	Position(ln, originX, originY, cfg)
	return ln
}

// Layout builds a measured, unpositioned layout tree. X and Y are zero
// until Position runs.
func Layout(root *mindmap.Node, cfg Config) *LayoutNode {
	return build(root, 0, 0, cfg.normalized())
}

func build(n *mindmap.Node, depth, branchIndex int, cfg Config) *LayoutNode {
	m := Measure(n, depth, cfg)
	ln := &LayoutNode{
		ID:           n.ID,
		Text:         n.Text,
		TextLines:    m.TextLines,
		HeadingLevel: n.HeadingLevel,
		Collapsed:    n.Collapsed,
		Image:        n.Image,
		ImageWidth:   n.ImageWidth,
		ImageHeight:  n.ImageHeight,
		Width:        m.Width,
		Height:       m.Height,
		Depth:        depth,
		BranchIndex:  branchIndex,
		HasChildren:  len(n.Children) > 0,
	}

	if n.Collapsed {
		return ln
	}
	for i, c := range n.Children {
		bi := branchIndex
		if depth == 0 {
			// Each direct child of the root starts its own branch.
			bi = i
		}
		ln.Children = append(ln.Children, build(c, depth+1, bi, cfg))
	}
	return ln
}

// SubtreeHeight returns the vertical space the node and its visible
// descendants occupy: the stacked heights of the child subtrees plus
// gaps, floored at the node's own height. It is pure and idempotent;
// positioning calls it repeatedly without memoization.
func SubtreeHeight(ln *LayoutNode, cfg Config) float64 {
	if len(ln.Children) == 0 {
		return ln.Height
	}
	total := float64(len(ln.Children)-1) * cfg.GapY
	for _, c := range ln.Children {
		total += SubtreeHeight(c, cfg)
	}
	if total < ln.Height {
		total = ln.Height
	}
	return total
}

// Position fills in absolute coordinates. (x, y) is the top-left of the
// vertical band allotted to the whole subtree; the node's own box is
// centered within it. Children stack left-to-right of the parent with
// GapY between adjacent subtrees. This is the only pass that mutates
// layout nodes, kept in place to avoid reallocating large trees.
func Position(ln *LayoutNode, x, y float64, cfg Config) {
	ln.X = x
	ln.Y = y + SubtreeHeight(ln, cfg)/2 - ln.Height/2

	if len(ln.Children) == 0 {
		return
	}
	childX := x + ln.Width + cfg.GapX
	childY := y
	for _, c := range ln.Children {
		Position(c, childX, childY, cfg)
		childY += SubtreeHeight(c, cfg) + cfg.GapY
	}
}
