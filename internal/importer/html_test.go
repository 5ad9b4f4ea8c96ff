package importer

import (
	"strings"
	"testing"

	"github.com/markmind/markmind/internal/mindmap"
)

func TestHTMLImporter_OutlineAndLists(t *testing.T) {
	input := `<html><head><title>My Doc</title></head><body>
<h1>Overview</h1>
<p>Intro paragraph.</p>
<h2>Details</h2>
<ul>
  <li>first
    <ul><li>first-nested</li></ul>
  </li>
  <li>second</li>
</ul>
</body></html>`

	p := &HTMLImporter{}
	tree, err := p.Import(strings.NewReader(input), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	importedTreeValid(t, tree)

	if tree.Text != "My Doc" {
		t.Errorf("expected title from <title>, got %q", tree.Text)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 section, got %d", len(tree.Children))
	}

	overview := tree.Children[0]
	if overview.Text != "Overview" || overview.HeadingLevel != 2 {
		t.Errorf("expected %q at level 2, got %q level %d", "Overview", overview.Text, overview.HeadingLevel)
	}
	if len(overview.Children) != 2 {
		t.Fatalf("expected paragraph + details under Overview, got %d", len(overview.Children))
	}
	if overview.Children[0].Text != "Intro paragraph." {
		t.Errorf("expected paragraph item, got %q", overview.Children[0].Text)
	}

	details := overview.Children[1]
	if details.Text != "Details" || details.HeadingLevel != 3 {
		t.Errorf("expected %q at level 3, got %q level %d", "Details", details.Text, details.HeadingLevel)
	}
	if len(details.Children) != 2 {
		t.Fatalf("expected 2 list items, got %d", len(details.Children))
	}
	first := details.Children[0]
	if first.Text != "first" {
		t.Errorf("expected item label %q, got %q", "first", first.Text)
	}
	if len(first.Children) != 1 || first.Children[0].Text != "first-nested" {
		t.Fatalf("expected nested item, got %v", first.Children)
	}
}

func TestHTMLImporter_SkipsChrome(t *testing.T) {
	input := `<html><body>
<nav><ul><li>menu entry</li></ul></nav>
<h1>Real</h1>
<script>var x = 1;</script>
<p>Content.</p>
</body></html>`

	p := &HTMLImporter{}
	tree, err := p.Import(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var texts []string
	tree.Walk(func(n *mindmap.Node) { texts = append(texts, n.Text) })
	joined := strings.Join(texts, "|")
	if strings.Contains(joined, "menu entry") || strings.Contains(joined, "var x") {
		t.Errorf("expected nav/script content skipped, got %v", texts)
	}
	if !strings.Contains(joined, "Content.") {
		t.Errorf("expected body content kept, got %v", texts)
	}
}

func TestHTMLImporter_ImageOnItem(t *testing.T) {
	input := `<html><body><h1>T</h1><ul><li>shot <img src="img/a.png"></li></ul></body></html>`

	p := &HTMLImporter{}
	tree, err := p.Import(strings.NewReader(input), "x.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := tree.Children[0].Children[0]
	if item.Image != "img/a.png" {
		t.Errorf("expected image src attached, got %q", item.Image)
	}
}
