package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/markmind/markmind/internal/mindmap"
	"golang.org/x/net/html"
)

// HTMLImporter handles HTML documents: h1-h6 become the outline,
// paragraphs and list structure become list items.
type HTMLImporter struct{}

func (p *HTMLImporter) Import(r io.Reader, filename string) (*mindmap.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := titleFromFilename(filename, ".html", ".htm")
	if t := findTitle(doc); t != "" {
		title = t
	}
	b := newTreeBuilder(title)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				b.pushHeading(level, textContent(n))
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "ul", "ol":
				importHTMLList(n, b.current())
				return
			case "p", "td", "blockquote":
				if t := textContent(n); t != "" {
					leaf := b.addLeaf(t)
					if src := findImageSrc(n); src != "" {
						leaf.Image = src
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return b.tree(), nil
}

// importHTMLList converts ul/ol structure into nested list-item nodes.
func importHTMLList(list *html.Node, parent *mindmap.Node) {
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		item := mindmap.New(flatten(ownText(li)), 0)
		if src := findImageSrc(li); src != "" {
			item.Image = src
		}
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				importHTMLList(c, item)
			}
		}
		if item.Text == "" && len(item.Children) == 0 && item.Image == "" {
			continue
		}
		parent.AddChild(item)
	}
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// textContent collects all descendant text.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

// ownText collects descendant text, skipping nested lists so an item's
// label excludes its children's labels.
func ownText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extract(c)
	}
	return strings.TrimSpace(buf.String())
}

func findImageSrc(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "img" {
		for _, attr := range n.Attr {
			if attr.Key == "src" {
				return attr.Val
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if src := findImageSrc(c); src != "" {
			return src
		}
	}
	return ""
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
