package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentFrontMatter(t *testing.T) {
	src := "---\ntitle: Hello World\ntags: [a, b]\n---\n# Heading\n\nBody text\n"
	p, err := NewDocument([]byte(src))
	require.NoError(t, err)

	title, ok := p.Meta("title")
	assert.True(t, ok)
	assert.Equal(t, "Hello World", title)
	assert.Equal(t, "[a b]", p.Metas()["tags"])

	root, err := p.Parse()
	require.NoError(t, err)
	got, err := root.Render()
	require.NoError(t, err)
	assert.Equal(t, "<div><h1>Heading</h1><p>Body text</p></div>", got)
}

func TestNewDocumentTOML(t *testing.T) {
	p, err := NewDocument([]byte("+++\ntitle = \"From TOML\"\n+++\n\ntext\n"))
	require.NoError(t, err)
	title, ok := p.Meta("title")
	assert.True(t, ok)
	assert.Equal(t, "From TOML", title)
	assert.Equal(t, 1, p.Len())
}

func TestNewDocumentWithoutFrontMatter(t *testing.T) {
	p, err := NewDocument([]byte("# Plain\n\ndocument"))
	require.NoError(t, err)
	assert.Empty(t, p.Metas())
	_, ok := p.Meta("title")
	assert.False(t, ok)
	assert.Equal(t, 2, p.Len())
}
