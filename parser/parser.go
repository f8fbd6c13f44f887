// Package parser splits a Markdown document into blocks and converts each
// block into an HTML node.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/insomnimus/mdtree/ast"
	"github.com/insomnimus/mdtree/lexer"
)

// ErrNoTitle is returned by ExtractTitle when a document has no h1.
var ErrNoTitle = errors.New("document has no level 1 heading")

// Parser walks the blocks of one document in order.
type Parser struct {
	blocks   []chunk
	pos      int
	offset   int // lines removed ahead of the body, e.g. front matter
	warnings []*Warning
	meta     map[string]string
}

func New(doc string) *Parser {
	return &Parser{
		blocks: segment(doc),
		meta:   make(map[string]string),
	}
}

// Len returns the number of blocks in the document.
func (p *Parser) Len() int { return len(p.blocks) }

// Next converts and returns the next block. It returns nil, nil once every
// block has been consumed.
func (p *Parser) Next() (*ast.Node, error) {
	if p.pos >= len(p.blocks) {
		return nil, nil
	}
	c := p.blocks[p.pos]
	p.pos++

	bt := Classify(c.text)
	p.lint(c, bt)
	n, err := Convert(c.text, bt)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s block: %w", c.line+p.offset, bt, err)
	}
	return n, nil
}

// Parse converts the remaining blocks and wraps them in a div.
func (p *Parser) Parse() (*ast.Node, error) {
	var nodes []*ast.Node
	for {
		n, err := p.Next()
		if err != nil {
			return nil, err
		}
		if n == nil {
			break
		}
		nodes = append(nodes, n)
	}
	return ast.Parent("div", nodes...)
}

// Assemble converts a whole document into a div holding one node per block.
// An empty document gives an empty div.
func Assemble(doc string) (*ast.Node, error) {
	return New(doc).Parse()
}

// Title returns the plain text of the document's first level 1 heading,
// with inline markup removed. It does not move the parser.
func (p *Parser) Title() (string, error) {
	for _, c := range p.blocks {
		if Classify(c.text) != Heading(1) {
			continue
		}
		spans, err := lexer.Tokenize(stripHeading(c.text))
		if err != nil {
			return "", fmt.Errorf("line %d: title: %w", c.line+p.offset, err)
		}
		var b strings.Builder
		for _, s := range spans {
			b.WriteString(s.Text)
		}
		return b.String(), nil
	}
	return "", ErrNoTitle
}

// ExtractTitle returns the text of doc's first level 1 heading.
func ExtractTitle(doc string) (string, error) {
	return New(doc).Title()
}
