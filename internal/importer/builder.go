package importer

import "github.com/markmind/markmind/internal/mindmap"

// treeBuilder assembles a mindmap tree from a stream of outline events,
// tracking the open-section path with a stack keyed by source heading
// level. Source levels 1-3 become dialect headings 2-4; deeper levels
// fall back to list items so nothing exceeds the dialect's four heading
// tiers. Because deeper source levels always map at least as low, a
// heading node is never created beneath a list node.
type treeBuilder struct {
	root  *mindmap.Node
	stack []builderFrame
}

type builderFrame struct {
	node  *mindmap.Node
	level int // source heading level; 0 is the root frame
}

func newTreeBuilder(title string) *treeBuilder {
	root := mindmap.New(flatten(title), 1)
	return &treeBuilder{
		root:  root,
		stack: []builderFrame{{node: root, level: 0}},
	}
}

// pushHeading opens a section for a 1-based source heading level.
func (b *treeBuilder) pushHeading(level int, text string) *mindmap.Node {
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}

	headingLevel := level + 1
	if headingLevel > 4 {
		headingLevel = 0
	}
	node := mindmap.New(flatten(text), headingLevel)
	b.stack[len(b.stack)-1].node.AddChild(node)
	b.stack = append(b.stack, builderFrame{node: node, level: level})
	return node
}

// addLeaf attaches a list-item node to the current open section.
func (b *treeBuilder) addLeaf(text string) *mindmap.Node {
	return b.current().AddChild(mindmap.New(flatten(text), 0))
}

// current returns the node new content attaches to.
func (b *treeBuilder) current() *mindmap.Node {
	return b.stack[len(b.stack)-1].node
}

func (b *treeBuilder) tree() *mindmap.Node {
	return b.root
}
