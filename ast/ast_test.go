package ast

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLeaf(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"raw text", Text("Normal text"), "Normal text"},
		{"raw text escaped", Text("a < b & c"), "a &lt; b &amp; c"},
		{"bold", Leaf("b", "Bold text"), "<b>Bold text</b>"},
		{"link", Leaf("a", "Click me!", Attr{"href", "https://www.google.com"}), `<a href="https://www.google.com">Click me!</a>`},
		{"image", Leaf("img", "", Attr{"src", "u.png"}, Attr{"alt", "x"}), `<img src="u.png" alt="x"/>`},
		{"attribute order kept", Leaf("img", "", Attr{"alt", "x"}, Attr{"src", "u.png"}), `<img alt="x" src="u.png"/>`},
		{"attributes on text dropped", Leaf("", "t", Attr{"id", "x"}), "t"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.node.Render()
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestRenderParent(t *testing.T) {
	p := MustParent("p",
		Leaf("b", "Bold text"),
		Text("Normal text"),
		Leaf("i", "italic text"),
		Text("Normal text"),
	)
	got, err := p.Render()
	require.NoError(t, err)
	assert.Equal(t, "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>", got)

	nested := MustParent("div", MustParent("ul", MustParent("li", Text("one")), MustParent("li", Text("two"))))
	var buf bytes.Buffer
	require.NoError(t, nested.RenderTo(&buf))
	assert.Equal(t, "<div><ul><li>one</li><li>two</li></ul></div>", buf.String())

	empty := MustParent("div")
	got, err = empty.Render()
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", got)
}

func TestInvalidShape(t *testing.T) {
	_, err := Parent("")
	assert.True(t, errors.Is(err, ErrInvalidNodeShape))

	_, err = Parent("p", Text("a"), nil)
	assert.True(t, errors.Is(err, ErrInvalidNodeShape))

	assert.Panics(t, func() { MustParent("") })

	_, err = (&Node{}).Render()
	assert.True(t, errors.Is(err, ErrInvalidNodeShape))

	_, err = MustParent("div", MustParent("p", &Node{})).Render()
	assert.True(t, errors.Is(err, ErrInvalidNodeShape), "invalid node deep in the tree")

	_, err = Leaf("img", "text").Render()
	assert.True(t, errors.Is(err, ErrInvalidNodeShape))
}

func TestAccessors(t *testing.T) {
	a := Leaf("a", "label", Attr{"href", "u"}, Attr{"href", "v"})
	assert.True(t, a.IsLeaf())
	assert.Equal(t, "a", a.Tag())
	assert.Equal(t, "label", a.Value())
	assert.Nil(t, a.Children())
	assert.Equal(t, []Attr{{"href", "v"}}, a.Attrs(), "duplicate key replaces the value")
	href, ok := a.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "v", href)
	_, ok = a.Attr("title")
	assert.False(t, ok)

	children := []*Node{Text("x")}
	p := MustParent("p", children...)
	children[0] = Text("changed")
	assert.Equal(t, "x", p.Children()[0].Value(), "parent owns its child list")
	assert.False(t, p.IsLeaf())
}

func TestEqual(t *testing.T) {
	a := Leaf("img", "", Attr{"src", "u"}, Attr{"alt", "x"})
	b := Leaf("img", "", Attr{"alt", "x"}, Attr{"src", "u"})
	assert.True(t, a.Equal(b), "attribute order is irrelevant")
	assert.False(t, a.Equal(Leaf("img", "", Attr{"src", "u"})))
	assert.False(t, Text("a").Equal(Leaf("b", "a")))
	assert.False(t, Leaf("p", "").Equal(MustParent("p")), "leaf and branch differ")

	t1 := MustParent("ul", MustParent("li", Text("a")))
	t2 := MustParent("ul", MustParent("li", Text("a")))
	t3 := MustParent("ul", MustParent("li", Text("b")))
	assert.True(t, t1.Equal(t2))
	assert.False(t, t1.Equal(t3))

	var nilNode *Node
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, t1.Equal(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "<b>x</b>", Leaf("b", "x").String())
	assert.Contains(t, (&Node{}).String(), "invalid node shape")
}
