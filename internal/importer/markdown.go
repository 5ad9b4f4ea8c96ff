package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/markmind/markmind/internal/mindmap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownImporter handles full CommonMark documents using goldmark,
// downconverting them to the dialect's heading/list/image constructs.
// Emphasis, links, and code fences survive only as their text content.
type MarkdownImporter struct{}

func (p *MarkdownImporter) Import(r io.Reader, filename string) (*mindmap.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	b := newTreeBuilder(titleFromFilename(filename, ".md", ".markdown"))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			b.pushHeading(node.Level, string(node.Text(src)))
		case *ast.List:
			importList(node, src, b.current())
		default:
			t := extractText(n, src)
			if t == "" {
				continue
			}
			leaf := b.addLeaf(t)
			if img := firstImage(n); img != "" {
				leaf.Image = img
			}
		}
	}

	return b.tree(), nil
}

// importList converts a goldmark list into nested list-item nodes.
func importList(list *ast.List, src []byte, parent *mindmap.Node) {
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		item := mindmap.New("", 0)
		var parts []string
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				importList(nested, src, item)
				continue
			}
			if t := extractText(c, src); t != "" {
				parts = append(parts, t)
			}
			if item.Image == "" {
				item.Image = firstImage(c)
			}
		}
		item.Text = flatten(strings.Join(parts, " "))
		if item.Text == "" && len(item.Children) == 0 && item.Image == "" {
			continue
		}
		parent.AddChild(item)
	}
}

// extractText gets the text content of a goldmark AST node. Blocks with
// inline children (paragraphs, text blocks) read from the children;
// childless blocks (code fences) read their raw lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
			if c.Type() == ast.TypeBlock {
				buf.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// firstImage returns the destination of the first image beneath n.
func firstImage(n ast.Node) string {
	if img, ok := n.(*ast.Image); ok {
		return string(img.Destination)
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if dest := firstImage(c); dest != "" {
			return dest
		}
	}
	return ""
}
