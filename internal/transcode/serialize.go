package transcode

import (
	"fmt"
	"strings"

	"github.com/markmind/markmind/internal/mindmap"
)

// Serialize renders a node tree back to dialect text. For any tree
// produced by Parse, reparsing the output yields a structurally
// identical tree (IDs excepted). Hand-written input with unusual
// whitespace is normalized rather than preserved byte-for-byte.
func Serialize(root *mindmap.Node) string {
	var b strings.Builder
	b.WriteString("# " + root.Text + "\n")
	writeImage(&b, root, "")
	for _, c := range root.Children {
		writeNode(&b, c, 0)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *mindmap.Node, depth int) {
	if n.HeadingLevel >= 2 {
		b.WriteString(strings.Repeat("#", n.HeadingLevel) + " " + n.Text + "\n")
		writeImage(b, n, "")
		// Headings restart list indentation beneath them.
		for _, c := range n.Children {
			writeNode(b, c, 0)
		}
		return
	}

	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + "- " + n.Text + "\n")
	writeImage(b, n, indent)
	for _, c := range n.Children {
		writeNode(b, c, depth+1)
	}
}

func writeImage(b *strings.Builder, n *mindmap.Node, indent string) {
	if n.Image == "" {
		return
	}
	// The size suffix is only emitted when both dimensions are set.
	if n.ImageWidth > 0 && n.ImageHeight > 0 {
		fmt.Fprintf(b, "%s![](%s =%dx%d)\n", indent, n.Image, n.ImageWidth, n.ImageHeight)
		return
	}
	fmt.Fprintf(b, "%s![](%s)\n", indent, n.Image)
}
