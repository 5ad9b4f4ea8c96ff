// Package layout computes a deterministic left-to-right 2-D layout for
// mindmap trees. Sizing uses a constant-glyph-width approximation of
// font metrics, so identical input always yields identical geometry.
package layout

// Config controls node sizing and spacing. All fields are plain values
// so tests can exercise alternate layouts without global state.
type Config struct {
	FontSizeRoot   float64 // depth 0
	FontSizeBranch float64 // depth 1
	FontSizeLeaf   float64 // depth >= 2

	CharWidthRatio  float64 // estimated glyph width as a fraction of font size
	LineHeightRatio float64 // line height as a fraction of font size

	MaxNodeWidth float64
	PaddingX     float64
	PaddingY     float64
	GapX         float64 // horizontal gap between a node and its children
	GapY         float64 // vertical gap between adjacent sibling subtrees

	ImagePadding       float64
	ImageDefaultWidth  float64 // thumbnail size when no explicit dimension is set
	ImageDefaultHeight float64
}

// DefaultConfig returns the standard layout parameters.
func DefaultConfig() Config {
	return Config{
		FontSizeRoot:       16,
		FontSizeBranch:     14,
		FontSizeLeaf:       13,
		CharWidthRatio:     0.6,
		LineHeightRatio:    1.4,
		MaxNodeWidth:       300,
		PaddingX:           12,
		PaddingY:           8,
		GapX:               48,
		GapY:               16,
		ImagePadding:       8,
		ImageDefaultWidth:  120,
		ImageDefaultHeight: 80,
	}
}

// FontSize returns the font size for a node at the given depth. The
// table is fixed at three tiers; it is not a formula.
func (c Config) FontSize(depth int) float64 {
	switch depth {
	case 0:
		return c.FontSizeRoot
	case 1:
		return c.FontSizeBranch
	default:
		return c.FontSizeLeaf
	}
}

// normalized fills zero-valued fields from DefaultConfig so a partially
// populated Config never produces degenerate geometry.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.FontSizeRoot <= 0 {
		c.FontSizeRoot = d.FontSizeRoot
	}
	if c.FontSizeBranch <= 0 {
		c.FontSizeBranch = d.FontSizeBranch
	}
	if c.FontSizeLeaf <= 0 {
		c.FontSizeLeaf = d.FontSizeLeaf
	}
	if c.CharWidthRatio <= 0 {
		c.CharWidthRatio = d.CharWidthRatio
	}
	if c.LineHeightRatio <= 0 {
		c.LineHeightRatio = d.LineHeightRatio
	}
	if c.MaxNodeWidth <= 0 {
		c.MaxNodeWidth = d.MaxNodeWidth
	}
	if c.PaddingX <= 0 {
		c.PaddingX = d.PaddingX
	}
	if c.PaddingY <= 0 {
		c.PaddingY = d.PaddingY
	}
	if c.GapX <= 0 {
		c.GapX = d.GapX
	}
	if c.GapY <= 0 {
		c.GapY = d.GapY
	}
	if c.ImagePadding <= 0 {
		c.ImagePadding = d.ImagePadding
	}
	if c.ImageDefaultWidth <= 0 {
		c.ImageDefaultWidth = d.ImageDefaultWidth
	}
	if c.ImageDefaultHeight <= 0 {
		c.ImageDefaultHeight = d.ImageDefaultHeight
	}
	return c
}
