package scrape

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"gedcard/internal/textutil"
)

func mustSelector(sel string) cascadia.Selector {
	return cascadia.MustCompile(sel)
}

// testIDSelector builds a descendant selector from data-testid values,
// outermost first.
func testIDSelector(tags []string) (cascadia.Selector, error) {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf(`[data-testid=%q]`, tag))
	}
	return cascadia.Compile(strings.Join(parts, " "))
}

func queryFirst(tags []string, src *html.Node) *html.Node {
	if len(tags) == 0 || src == nil {
		return nil
	}
	sel, err := testIDSelector(tags)
	if err != nil {
		return nil
	}
	return sel.MatchFirst(src)
}

func queryAll(tags []string, src *html.Node) []*html.Node {
	if len(tags) == 0 || src == nil {
		return nil
	}
	sel, err := testIDSelector(tags)
	if err != nil {
		return nil
	}
	return sel.MatchAll(src)
}

// blockElements break text the way a browser lays them out. Inline markup
// joins its text to the neighbouring words.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.Option: true, atom.P: true,
	atom.Pre: true, atom.Section: true, atom.Table: true, atom.Tbody: true,
	atom.Td: true, atom.Tfoot: true, atom.Th: true, atom.Thead: true, atom.Tr: true,
	atom.Ul: true,
}

// innerText returns the node's visible text with whitespace collapsed.
func innerText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			b.WriteString(node.Data)
			return
		case html.ElementNode:
			switch node.DataAtom {
			case atom.Script, atom.Style, atom.Template:
				return
			}
		}
		block := node.Type == html.ElementNode && blockElements[node.DataAtom]
		if block {
			b.WriteByte(' ')
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte(' ')
		}
	}
	walk(n)
	return textutil.CollapseSpace(b.String())
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func elementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func ancestor(n *html.Node, levels int) *html.Node {
	for i := 0; i < levels && n != nil; i++ {
		n = n.Parent
	}
	return n
}

func childAt(nodes []*html.Node, i int) *html.Node {
	if i < len(nodes) {
		return nodes[i]
	}
	return nil
}
