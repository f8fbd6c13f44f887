package ast

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render serializes the tree to an HTML string.
func (n *Node) Render() (string, error) {
	var out strings.Builder
	if err := n.RenderTo(&out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// RenderTo writes the tree as HTML to w. Text and attribute values are
// escaped; attributes keep their insertion order.
func (n *Node) RenderTo(w io.Writer) error {
	h, err := n.htmlNode()
	if err != nil {
		return err
	}
	return html.Render(w, h)
}

func (n *Node) htmlNode() (*html.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidNodeShape)
	}
	switch n.shape {
	case leaf:
		if n.tag == "" {
			return textNode(n.value), nil
		}
		e := element(n.tag, n.attrs)
		if n.value == "" {
			return e, nil
		}
		if voidElements[n.tag] {
			return nil, fmt.Errorf("%w: void element <%s> cannot hold text", ErrInvalidNodeShape, n.tag)
		}
		e.AppendChild(textNode(n.value))
		return e, nil
	case branch:
		e := element(n.tag, n.attrs)
		for _, c := range n.children {
			h, err := c.htmlNode()
			if err != nil {
				return nil, err
			}
			e.AppendChild(h)
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: node has neither value nor children", ErrInvalidNodeShape)
}

func element(tag string, attrs []Attr) *html.Node {
	e := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range attrs {
		e.Attr = append(e.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	return e
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
