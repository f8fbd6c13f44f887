package parser

import (
	"fmt"
	"strings"
)

// Warning describes a block that looked like markup but was read as a paragraph.
type Warning struct {
	Line   int
	format string
	args   []interface{}
}

func (w *Warning) String() string {
	return fmt.Sprintf("line %d: "+w.format, append([]interface{}{w.Line}, w.args...)...)
}

func (p *Parser) warnAt(line int, format string, args ...interface{}) {
	p.warnings = append(p.warnings, &Warning{
		Line:   line + p.offset,
		format: format,
		args:   args,
	})
}

func (p *Parser) Warnings() []*Warning {
	return p.warnings
}

// lint records why a block that starts like a heading, fence, quote or list
// fell back to a paragraph.
func (p *Parser) lint(c chunk, bt BlockType) {
	if bt.Kind != ParagraphBlock {
		return
	}
	lines := splitLines(c.text)
	first := lines[0]
	switch {
	case first == fence:
		p.warnAt(c.line, "code block not terminated with %q", fence)
	case strings.HasPrefix(first, "#"):
		if len(lines) == 1 && strings.Count(strings.SplitN(first, " ", 2)[0], "#") > maxHeading {
			p.warnAt(c.line, "too many '#' for a heading, maximum is %d", maxHeading)
		} else if len(lines) > 1 && headingLevel(first) > 0 {
			p.warnAt(c.line, "heading must be followed by a blank line")
		}
	case isQuoteLine(first):
		if i := firstFailing(lines, isQuoteLine); i > 0 {
			p.warnAt(c.line+i, "line in quote block does not start with '>'")
		}
	case isUnorderedItem(first):
		if i := firstFailing(lines, isUnorderedItem); i > 0 {
			p.warnAt(c.line+i, "line in list block does not start with '* ' or '- '")
		}
	case strings.HasPrefix(first, orderedMarker(0)):
		if i := orderedBreak(lines); i > 0 {
			p.warnAt(c.line+i, "ordered list numbering breaks, expected %q", orderedMarker(i))
		}
	}
}

func firstFailing(lines []string, f func(string) bool) int {
	for i, ln := range lines {
		if !f(ln) {
			return i
		}
	}
	return -1
}
