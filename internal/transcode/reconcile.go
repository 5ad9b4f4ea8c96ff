package transcode

import "github.com/markmind/markmind/internal/mindmap"

// Reconcile copies state that does not survive a reparse from an old
// tree into a freshly parsed one: the collapse flag, and explicit image
// dimensions the host set without writing them back to the text.
//
// Matching is purely positional: same child index at every depth,
// depth-first, stopping where the child counts diverge. Extra children
// in the fresh tree keep their unreconciled state. Inserting or
// reordering a sibling shifts every later match at that level; this is
// a best-effort heuristic, not an identity match.
func Reconcile(old, fresh *mindmap.Node) {
	if old == nil || fresh == nil {
		return
	}

	fresh.Collapsed = old.Collapsed

	// Dimensions are carried only onto a node that still has an image
	// and no explicit size of its own; a size written in the text wins.
	if fresh.Image != "" && fresh.ImageWidth == 0 && fresh.ImageHeight == 0 {
		fresh.ImageWidth = old.ImageWidth
		fresh.ImageHeight = old.ImageHeight
	}

	n := len(old.Children)
	if len(fresh.Children) < n {
		n = len(fresh.Children)
	}
	for i := range n {
		Reconcile(old.Children[i], fresh.Children[i])
	}
}
