package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockKind is the syntactic category of a block.
type BlockKind uint8

const (
	ParagraphBlock BlockKind = iota
	HeadingBlock
	CodeBlock
	QuoteBlock
	UnorderedListBlock
	OrderedListBlock
)

var blockNames = [...]string{
	ParagraphBlock:     "paragraph",
	HeadingBlock:       "heading",
	CodeBlock:          "code",
	QuoteBlock:         "quote",
	UnorderedListBlock: "unordered_list",
	OrderedListBlock:   "ordered_list",
}

func (k BlockKind) String() string {
	if int(k) < len(blockNames) {
		return blockNames[k]
	}
	return fmt.Sprintf("BlockKind(%d)", uint8(k))
}

// BlockType is a block's category. Level is 1..6 for headings and 0 otherwise.
type BlockType struct {
	Kind  BlockKind
	Level int
}

var (
	Paragraph     = BlockType{Kind: ParagraphBlock}
	Code          = BlockType{Kind: CodeBlock}
	Quote         = BlockType{Kind: QuoteBlock}
	UnorderedList = BlockType{Kind: UnorderedListBlock}
	OrderedList   = BlockType{Kind: OrderedListBlock}
)

func Heading(level int) BlockType {
	return BlockType{Kind: HeadingBlock, Level: level}
}

func (bt BlockType) String() string {
	if bt.Kind == HeadingBlock {
		return fmt.Sprintf("heading(%d)", bt.Level)
	}
	return bt.Kind.String()
}

const (
	fence      = "```"
	maxHeading = 6
)

type chunk struct {
	text string
	line int // 1-based line of the chunk's first line
}

// Segment splits a document into blocks on runs of blank lines.
// Every line is trimmed, and blocks keep their inner newlines.
func Segment(doc string) []string {
	chunks := segment(doc)
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, c.text)
	}
	return out
}

func segment(doc string) []chunk {
	var (
		chunks []chunk
		lines  []string
		start  int
	)
	flush := func() {
		if len(lines) > 0 {
			chunks = append(chunks, chunk{
				text: strings.Join(lines, "\n"),
				line: start,
			})
			lines = lines[:0]
		}
	}
	for i, ln := range strings.Split(normalize(doc), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			flush()
			continue
		}
		if len(lines) == 0 {
			start = i + 1
		}
		lines = append(lines, ln)
	}
	flush()
	return chunks
}

// Classify reports the type of a block. Anything that does not match a more
// specific rule is a paragraph.
func Classify(block string) BlockType {
	lines := splitLines(block)
	if len(lines) == 1 {
		if level := headingLevel(lines[0]); level > 0 {
			return Heading(level)
		}
	}
	if len(lines) >= 2 && lines[0] == fence && lines[len(lines)-1] == fence {
		return Code
	}
	if every(lines, isQuoteLine) {
		return Quote
	}
	if every(lines, isUnorderedItem) {
		return UnorderedList
	}
	if orderedBreak(lines) < 0 {
		return OrderedList
	}
	return Paragraph
}

// headingLevel returns the number of leading '#' when line is a heading, 0 otherwise.
func headingLevel(line string) int {
	n := strings.IndexFunc(line, func(r rune) bool { return r != '#' })
	if n < 1 || n > maxHeading || line[n] != ' ' {
		return 0
	}
	return n
}

func isQuoteLine(line string) bool { return strings.HasPrefix(line, ">") }

func isUnorderedItem(line string) bool {
	return strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ")
}

func orderedMarker(i int) string { return strconv.Itoa(i+1) + ". " }

// orderedBreak returns the index of the first line that does not continue the
// 1., 2., 3. sequence, or -1 when every line does.
func orderedBreak(lines []string) int {
	for i, ln := range lines {
		if !strings.HasPrefix(ln, orderedMarker(i)) {
			return i
		}
	}
	return -1
}
