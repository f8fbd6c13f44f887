// Package lexer turns a run of inline Markdown into typed spans.
//
// Tokenize applies a fixed sequence of passes. The order matters because the
// markup overlaps: "**" must be consumed before "*", and images before links,
// since "![alt](url)" contains a link.
//
//	bold "**" -> italic "*" -> code "`" -> images -> links
//
// Every pass only rewrites Plain spans; styled spans, links and images are
// passed through untouched, so inline markup never nests.
package lexer

import (
	"strings"

	"github.com/insomnimus/mdtree/token"
)

type delimiter struct {
	delim string
	kind  token.Kind
}

var delimiters = [...]delimiter{
	{"**", token.Bold},
	{"*", token.Italic},
	{"`", token.Code},
}

// Tokenize splits text into spans. It fails with a *DelimiterError when a
// styling delimiter occurs an odd number of times inside one plain span.
// Text without markup comes back as a single Plain span, even when empty.
func Tokenize(text string) ([]token.Span, error) {
	spans := []token.Span{token.NewText(text)}
	var err error
	for _, d := range delimiters {
		spans, err = SplitDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = SplitImages(spans)
	return SplitLinks(spans), nil
}

// SplitDelimiter splits every Plain span on delim. Text between the 1st and
// 2nd, 3rd and 4th... occurrence becomes a span of the given kind, the rest
// stays Plain. Empty pieces are dropped.
func SplitDelimiter(spans []token.Span, delim string, kind token.Kind) ([]token.Span, error) {
	if delim == "" {
		panicf("SplitDelimiter called with an empty delimiter")
	}
	out := make([]token.Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != token.Plain || !strings.Contains(s.Text, delim) {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.Text, delim)
		if len(parts)%2 == 0 {
			return nil, &DelimiterError{
				Delim:  delim,
				Count:  len(parts) - 1,
				Offset: strings.LastIndex(s.Text, delim),
				Text:   s.Text,
			}
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 1 {
				out = append(out, token.New(part, kind))
			} else {
				out = append(out, token.NewText(part))
			}
		}
	}
	return out, nil
}
