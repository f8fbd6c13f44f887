package ast

type shape uint8

const (
	invalid shape = iota
	leaf
	branch
)

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// Node is an element of an HTML document tree.
//
// A node is either a leaf, carrying a text value, or a branch, carrying
// children; never both. A leaf without a tag is raw text. The zero Node is
// neither and fails to render. Nodes are immutable once built.
type Node struct {
	tag      string
	value    string
	children []*Node
	attrs    []Attr
	shape    shape
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}
