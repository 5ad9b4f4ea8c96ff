package layout

import (
	"testing"

	"github.com/markmind/markmind/internal/mindmap"
	"github.com/markmind/markmind/internal/transcode"
)

func TestLayout_DepthAndBranchIndex(t *testing.T) {
	root := transcode.Parse("# Root\n## A\n- a1\n- a2\n## B\n- b1\n  - b2")
	ln := Layout(root, DefaultConfig())

	if ln.Depth != 0 {
		t.Errorf("expected root depth 0, got %d", ln.Depth)
	}

	a, b := ln.Children[0], ln.Children[1]
	if a.BranchIndex != 0 || b.BranchIndex != 1 {
		t.Errorf("expected branch indices 0 and 1, got %d and %d", a.BranchIndex, b.BranchIndex)
	}

	// The branch index propagates unchanged to every descendant.
	var check func(n *LayoutNode, want int)
	check = func(n *LayoutNode, want int) {
		if n.BranchIndex != want {
			t.Errorf("node %q: expected branch index %d, got %d", n.Text, want, n.BranchIndex)
		}
		for _, c := range n.Children {
			check(c, want)
		}
	}
	check(a, 0)
	check(b, 1)

	if a.Children[0].Depth != 2 {
		t.Errorf("expected depth 2 for a1, got %d", a.Children[0].Depth)
	}
	if b.Children[0].Children[0].Depth != 3 {
		t.Errorf("expected depth 3 for b2, got %d", b.Children[0].Children[0].Depth)
	}
}

func TestLayout_CollapseExcludesChildren(t *testing.T) {
	root := transcode.Parse("# Root\n## A\n- a1\n- a2")
	root.Children[0].Collapsed = true

	ln := Layout(root, DefaultConfig())
	a := ln.Children[0]

	if len(a.Children) != 0 {
		t.Errorf("expected collapsed node to have no layout children, got %d", len(a.Children))
	}
	if !a.HasChildren {
		t.Error("expected HasChildren to reflect the model even when collapsed")
	}
}

func TestLayout_LeafHasChildrenFalse(t *testing.T) {
	root := transcode.Parse("# Root\n- leaf")
	ln := Layout(root, DefaultConfig())
	if ln.Children[0].HasChildren {
		t.Error("expected leaf HasChildren false")
	}
}

func TestSubtreeHeight_LeafIsOwnHeight(t *testing.T) {
	cfg := DefaultConfig()
	ln := Layout(transcode.Parse("# Solo"), cfg)
	if got := SubtreeHeight(ln, cfg); got != ln.Height {
		t.Errorf("expected leaf subtree height %.1f, got %.1f", ln.Height, got)
	}
}

func TestSubtreeHeight_Monotonicity(t *testing.T) {
	cfg := DefaultConfig()
	root := transcode.Parse("# Root\n## A\n- a1\n- a2\n- a3\n## B\n- b1")
	ln := Layout(root, cfg)

	var check func(n *LayoutNode)
	check = func(n *LayoutNode) {
		h := SubtreeHeight(n, cfg)
		if h < n.Height {
			t.Errorf("node %q: subtree height %.1f below own height %.1f", n.Text, h, n.Height)
		}
		if len(n.Children) > 0 {
			sum := float64(len(n.Children)-1) * cfg.GapY
			for _, c := range n.Children {
				sum += SubtreeHeight(c, cfg)
			}
			if h < sum {
				t.Errorf("node %q: subtree height %.1f below children total %.1f", n.Text, h, sum)
			}
		}
		for _, c := range n.Children {
			check(c)
		}
	}
	check(ln)
}

func TestSubtreeHeight_FlooredAtOwnHeight(t *testing.T) {
	cfg := DefaultConfig()
	// A tall parent (image) with one tiny child: the parent's own box
	// sets the subtree height.
	root := mindmap.New("parent", 1)
	root.Image = "big.png"
	root.ImageHeight = 400
	root.AddChild(mindmap.New("c", 0))

	ln := Layout(root, cfg)
	if got := SubtreeHeight(ln, cfg); got != ln.Height {
		t.Errorf("expected floor at own height %.1f, got %.1f", ln.Height, got)
	}
}

func TestSubtreeHeight_IdempotentAcrossPositioning(t *testing.T) {
	cfg := DefaultConfig()
	ln := Layout(transcode.Parse("# Root\n## A\n- a1\n- a2\n## B"), cfg)

	before := SubtreeHeight(ln, cfg)
	Position(ln, 0, 0, cfg)
	after := SubtreeHeight(ln, cfg)
	if before != after {
		t.Errorf("positioning changed subtree height: %.1f -> %.1f", before, after)
	}
}

func TestPosition_RootCenteredInBand(t *testing.T) {
	cfg := DefaultConfig()
	ln := LayoutAt(transcode.Parse("# Root\n- a\n- b\n- c"), 10, 20, cfg)

	if ln.X != 10 {
		t.Errorf("expected root x 10, got %.1f", ln.X)
	}
	wantY := 20 + SubtreeHeight(ln, cfg)/2 - ln.Height/2
	if ln.Y != wantY {
		t.Errorf("expected root y %.1f, got %.1f", wantY, ln.Y)
	}
}

func TestPosition_ChildrenRightOfParent(t *testing.T) {
	cfg := DefaultConfig()
	ln := LayoutAt(transcode.Parse("# Root\n## A\n- a1\n## B"), 0, 0, cfg)

	wantX := ln.X + ln.Width + cfg.GapX
	for _, c := range ln.Children {
		if c.X != wantX {
			t.Errorf("child %q: expected x %.1f, got %.1f", c.Text, wantX, c.X)
		}
	}
	a := ln.Children[0]
	if got := a.Children[0].X; got != a.X+a.Width+cfg.GapX {
		t.Errorf("grandchild x %.1f not one gap right of parent", got)
	}
}

func TestPosition_SiblingsDoNotOverlap(t *testing.T) {
	cfg := DefaultConfig()
	ln := LayoutAt(transcode.Parse("# Root\n## A\n- a1\n- a2\n- a3\n## B\n- b1\n## C"), 0, 0, cfg)

	// Centering computes childY + h/2 - height/2, which accumulates
	// float error on the order of 1e-13; compare against the band with
	// a matching tolerance.
	const eps = 1e-9

	var bands []struct {
		top, bottom float64
		text        string
	}
	childY := 0.0
	for _, c := range ln.Children {
		h := SubtreeHeight(c, cfg)
		bands = append(bands, struct {
			top, bottom float64
			text        string
		}{childY, childY + h, c.Text})
		childY += h + cfg.GapY

		// The node box must lie within its band.
		if c.Y < bands[len(bands)-1].top-eps || c.Y+c.Height > bands[len(bands)-1].bottom+eps {
			t.Errorf("node %q box [%.1f, %.1f] outside band [%.1f, %.1f]",
				c.Text, c.Y, c.Y+c.Height, bands[len(bands)-1].top, bands[len(bands)-1].bottom)
		}
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].top < bands[i-1].bottom-eps {
			t.Errorf("bands %q and %q overlap", bands[i-1].text, bands[i].text)
		}
	}
}

func TestLayoutAt_RepeatedPassesAgree(t *testing.T) {
	cfg := DefaultConfig()
	root := transcode.Parse("# Root\n## A\n- a1\n- a2\n## B")

	first := LayoutAt(root, 5, 7, cfg)
	second := LayoutAt(root, 5, 7, cfg)

	var compare func(a, b *LayoutNode)
	compare = func(a, b *LayoutNode) {
		if a.X != b.X || a.Y != b.Y || a.Width != b.Width || a.Height != b.Height {
			t.Errorf("node %q: geometry differs between passes", a.Text)
		}
		for i := range a.Children {
			compare(a.Children[i], b.Children[i])
		}
	}
	compare(first, second)
}

func TestLayout_ZeroConfigUsesDefaults(t *testing.T) {
	ln := LayoutAt(transcode.Parse("# Root\n- item"), 0, 0, Config{})
	if ln.Width <= 0 || ln.Height <= 0 {
		t.Errorf("expected defaults for zero config, got %0.1fx%0.1f", ln.Width, ln.Height)
	}
}
