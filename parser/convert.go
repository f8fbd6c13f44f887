package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/insomnimus/mdtree/ast"
	"github.com/insomnimus/mdtree/lexer"
	"github.com/insomnimus/mdtree/token"
)

// ErrUnknownBlockType is returned by Convert for a BlockType it cannot build.
var ErrUnknownBlockType = errors.New("unknown block type")

// Convert builds the HTML node for a block of the given type. Inline content
// is tokenized; code blocks are kept literal.
func Convert(block string, bt BlockType) (*ast.Node, error) {
	lines := splitLines(block)
	switch bt.Kind {
	case HeadingBlock:
		if bt.Level < 1 || bt.Level > maxHeading {
			return nil, fmt.Errorf("%w: %s", ErrUnknownBlockType, bt)
		}
		return inline(fmt.Sprintf("h%d", bt.Level), stripHeading(lines[0]))
	case CodeBlock:
		return ast.MustParent("pre", ast.Leaf("code", codeContent(block))), nil
	case QuoteBlock:
		for i, ln := range lines {
			lines[i] = stripQuote(ln)
		}
		return inline("blockquote", strings.Join(lines, " "))
	case UnorderedListBlock:
		return list("ul", lines, stripBullet)
	case OrderedListBlock:
		return list("ol", lines, stripOrdered)
	case ParagraphBlock:
		return paragraph(lines)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownBlockType, bt)
}

func list(tag string, lines []string, strip func(string) string) (*ast.Node, error) {
	items := make([]*ast.Node, 0, len(lines))
	for _, ln := range lines {
		li, err := inline("li", strip(ln))
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return ast.Parent(tag, items...)
}

// paragraph joins lines with spaces. Markers left over from a block that fell
// back to a paragraph stay literal: a lone fence line, and the "* " bullets of
// a broken unordered list.
func paragraph(lines []string) (*ast.Node, error) {
	var (
		children []*ast.Node
		run      strings.Builder
		bullets  = isUnorderedItem(lines[0])
	)
	flush := func() error {
		if run.Len() == 0 {
			return nil
		}
		nodes, err := spanNodes(run.String())
		run.Reset()
		children = append(children, nodes...)
		return err
	}
	for i, ln := range lines {
		if i > 0 {
			run.WriteByte(' ')
		}
		marker := ""
		switch {
		case ln == fence:
			marker = fence
		case bullets && strings.HasPrefix(ln, "* "):
			marker = "* "
		}
		if marker == "" {
			run.WriteString(ln)
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		children = append(children, ast.Text(marker))
		run.WriteString(ln[len(marker):])
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return ast.Parent("p", children...)
}

func inline(tag, text string) (*ast.Node, error) {
	children, err := spanNodes(text)
	if err != nil {
		return nil, err
	}
	return ast.Parent(tag, children...)
}

func spanNodes(text string) ([]*ast.Node, error) {
	spans, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]*ast.Node, 0, len(spans))
	for _, s := range spans {
		nodes = append(nodes, SpanNode(s))
	}
	return nodes, nil
}

// SpanNode maps an inline span to its leaf node.
func SpanNode(s token.Span) *ast.Node {
	switch s.Kind {
	case token.Plain:
		return ast.Text(s.Text)
	case token.Bold:
		return ast.Leaf("b", s.Text)
	case token.Italic:
		return ast.Leaf("i", s.Text)
	case token.Code:
		return ast.Leaf("code", s.Text)
	case token.Link:
		return ast.Leaf("a", s.Text, ast.Attr{Key: "href", Val: s.URL})
	case token.Image:
		return ast.Leaf("img", "",
			ast.Attr{Key: "src", Val: s.URL},
			ast.Attr{Key: "alt", Val: s.Text})
	}
	panic(fmt.Sprintf("internal error: no node for span kind %s", s.Kind))
}
