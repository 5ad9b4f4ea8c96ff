// Package transcode converts between the supported Markdown dialect and
// mindmap node trees. The dialect is deliberately small: H1-H4 headings,
// `-` bullet lists with literal-space indentation, and a single optional
// image line attached to the preceding heading or list item. Everything
// else is dropped without error.
package transcode

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/markmind/markmind/internal/mindmap"
)

var (
	headingRe  = regexp.MustCompile(`^(#{1,4})\s+(.+)$`)
	listItemRe = regexp.MustCompile(`^(\s*)- (.+)$`)
	imageRe    = regexp.MustCompile(`^\s*!\[[^\]]*\]\(([^)\s]+)(?:\s*=(\d+)x(\d+))?\)\s*$`)
)

// Parse builds a node tree from raw document text. It never fails:
// unrecognized lines are skipped, and if no H1 is found a single default
// root is returned. Every call mints fresh node IDs; carry collapse and
// image state forward with Reconcile.
func Parse(text string) *mindmap.Node {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// The stack holds the path from root to the most recently opened
	// node. Heading frames carry their heading level; list frames carry
	// their literal indent.
	type frame struct {
		node    *mindmap.Node
		indent  int
		heading int
	}

	var root *mindmap.Node
	var stack []frame
	var lastNode *mindmap.Node // image attachment target

	for _, line := range strings.Split(text, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			label := strings.TrimSpace(m[2])

			if level == 1 {
				// A new H1 starts a new tree, discarding anything
				// parsed before it.
				root = mindmap.New(label, 1)
				stack = []frame{{node: root, heading: 1}}
				lastNode = root
				continue
			}
			if root == nil {
				lastNode = nil
				continue
			}

			// Pop to the nearest shallower heading, closing any open
			// list frames on the way. An H3 attaches directly under
			// the root if no H2 exists; no synthetic levels are
			// inserted.
			for len(stack) > 1 && (stack[len(stack)-1].heading == 0 || stack[len(stack)-1].heading >= level) {
				stack = stack[:len(stack)-1]
			}
			node := mindmap.New(label, level)
			stack[len(stack)-1].node.AddChild(node)
			stack = append(stack, frame{node: node, heading: level})
			lastNode = node
			continue
		}

		if m := imageRe.FindStringSubmatch(line); m != nil {
			// Only attaches if it immediately follows a heading or
			// list item; anywhere else it is plain text.
			if lastNode == nil {
				continue
			}
			lastNode.Image = m[1]
			if m[2] != "" {
				lastNode.ImageWidth, _ = strconv.Atoi(m[2])
				lastNode.ImageHeight, _ = strconv.Atoi(m[3])
			}
			continue
		}

		if m := listItemRe.FindStringSubmatch(line); m != nil {
			if root == nil {
				lastNode = nil
				continue
			}
			indent := len(m[1])

			// Pop list frames at the same or deeper indent; the
			// bottom frame is always a heading, so popping stops there.
			for stack[len(stack)-1].heading == 0 && stack[len(stack)-1].indent >= indent {
				stack = stack[:len(stack)-1]
			}
			node := mindmap.New(strings.TrimSpace(m[2]), 0)
			stack[len(stack)-1].node.AddChild(node)
			stack = append(stack, frame{node: node, indent: indent})
			lastNode = node
			continue
		}

		// Blank or unrecognized: an image line must not attach to a
		// stale target.
		lastNode = nil
	}

	if root == nil {
		root = mindmap.New(mindmap.DefaultRootText, 1)
	}
	return root
}
