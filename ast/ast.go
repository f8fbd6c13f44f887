// Package ast holds the HTML node tree produced from Markdown blocks.
package ast

import (
	"errors"
	"fmt"
)

// ErrInvalidNodeShape reports a node that is not exactly one of leaf or branch,
// or a leaf that cannot hold its value.
var ErrInvalidNodeShape = errors.New("invalid node shape")

// Text returns a raw text leaf with no wrapping element.
func Text(value string) *Node {
	return &Node{value: value, shape: leaf}
}

// Leaf returns an element holding value as its only content.
// An empty tag makes it a raw text leaf and drops attrs.
func Leaf(tag, value string, attrs ...Attr) *Node {
	n := &Node{tag: tag, value: value, shape: leaf}
	if tag != "" {
		for _, a := range attrs {
			n.setAttr(a)
		}
	}
	return n
}

// Parent returns an element wrapping children. The list may be empty.
func Parent(tag string, children ...*Node) (*Node, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: parent node without a tag", ErrInvalidNodeShape)
	}
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: <%s> child %d is nil", ErrInvalidNodeShape, tag, i)
		}
	}
	return &Node{
		tag:      tag,
		children: append(make([]*Node, 0, len(children)), children...),
		shape:    branch,
	}, nil
}

// MustParent is like Parent but panics on an invalid shape.
func MustParent(tag string, children ...*Node) *Node {
	n, err := Parent(tag, children...)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *Node) setAttr(a Attr) {
	for i := range n.attrs {
		if n.attrs[i].Key == a.Key {
			n.attrs[i].Val = a.Val
			return
		}
	}
	n.attrs = append(n.attrs, a)
}

// Tag returns the element name, or "" for raw text.
func (n *Node) Tag() string { return n.tag }

// Value returns the text of a leaf.
func (n *Node) Value() string { return n.value }

func (n *Node) IsLeaf() bool { return n.shape == leaf }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	if n.shape != branch {
		return nil
	}
	return append([]*Node(nil), n.children...)
}

// Attrs returns a copy of the attributes in insertion order.
func (n *Node) Attrs() []Attr {
	return append([]Attr(nil), n.attrs...)
}

func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Equal compares two trees structurally. Attribute order does not matter.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.shape != o.shape ||
		n.tag != o.tag ||
		n.value != o.value ||
		len(n.children) != len(o.children) ||
		len(n.attrs) != len(o.attrs) {
		return false
	}
	for _, a := range n.attrs {
		if v, ok := o.Attr(a.Key); !ok || v != a.Val {
			return false
		}
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	s, err := n.Render()
	if err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return s
}
