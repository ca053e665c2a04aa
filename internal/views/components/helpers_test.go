package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func findOne(t *testing.T, n *html.Node, match func(*html.Node) bool) *html.Node {
	t.Helper()
	nodes := findAll(n, match)
	if len(nodes) != 1 {
		t.Fatalf("expected exactly one matching element, got %d", len(nodes))
	}
	return nodes[0]
}

func bySlot(slot string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, "data-slot")
		return ok && v == slot
	}
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func tokens(classes string) map[string]bool {
	set := make(map[string]bool)
	for _, class := range strings.Fields(classes) {
		set[class] = true
	}
	return set
}

func containsAll(t *testing.T, classes, want string) {
	t.Helper()
	got := tokens(classes)
	for _, class := range strings.Fields(want) {
		if !got[class] {
			t.Fatalf("expected class %q in %q", class, classes)
		}
	}
}

func containsNone(t *testing.T, classes, unwanted string) {
	t.Helper()
	got := tokens(classes)
	for _, class := range strings.Fields(unwanted) {
		if got[class] {
			t.Fatalf("unexpected class %q in %q", class, classes)
		}
	}
}
