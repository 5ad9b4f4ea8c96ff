package mindmap

import "github.com/google/uuid"

// DefaultRootText is the label given to the root when a document
// contains no top-level heading.
const DefaultRootText = "Central Topic"

// Node is a single topic in a mind map. The tree has exactly one root
// (HeadingLevel 1); every other node has exactly one parent. Child order
// is semantic: it determines sibling position and serialization order.
type Node struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	HeadingLevel int    `json:"headingLevel"` // 0 = list item, 1 = root, 2-4 = section heading
	Collapsed    bool   `json:"collapsed,omitempty"`

	// Optional attached image. Width/height are independent: either,
	// both, or neither may be set.
	Image       string `json:"image,omitempty"`
	ImageWidth  int    `json:"imageWidth,omitempty"`
	ImageHeight int    `json:"imageHeight,omitempty"`

	Children []*Node `json:"children"`
}

// New creates a node with a fresh process-unique ID. IDs are never
// reused and are not stable across reparses.
func New(text string, headingLevel int) *Node {
	return &Node{
		ID:           uuid.NewString(),
		Text:         text,
		HeadingLevel: headingLevel,
	}
}

// AddChild appends a child and returns it, for fluent tree building.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// HasChildren reports whether the node has any children in the model,
// regardless of collapse state.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Walk visits n and every descendant depth-first, in child order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}
