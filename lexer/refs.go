package lexer

import (
	"regexp"

	"github.com/insomnimus/mdtree/token"
)

var (
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
)

// Ref is a link label or image alt text with its destination.
type Ref struct {
	Text string
	URL  string
}

// ExtractImages returns every ![alt](url) in text, left to right.
func ExtractImages(text string) []Ref {
	return refs(text, findImages(text))
}

// ExtractLinks returns every [label](url) in text that is not an image.
func ExtractLinks(text string) []Ref {
	return refs(text, findLinks(text))
}

// SplitImages replaces image syntax in Plain spans with Image spans.
func SplitImages(spans []token.Span) []token.Span {
	return splitRefs(spans, findImages, token.NewImage)
}

// SplitLinks replaces link syntax in Plain spans with Link spans. Run it after
// SplitImages; a match directly preceded by '!' is never taken as a link.
func SplitLinks(spans []token.Span) []token.Span {
	return splitRefs(spans, findLinks, token.NewLink)
}

func findImages(text string) [][]int {
	return imagePattern.FindAllStringSubmatchIndex(text, -1)
}

func findLinks(text string) [][]int {
	locs := linkPattern.FindAllStringSubmatchIndex(text, -1)
	out := locs[:0]
	for _, loc := range locs {
		if loc[0] > 0 && text[loc[0]-1] == '!' {
			continue
		}
		out = append(out, loc)
	}
	return out
}

func refs(text string, locs [][]int) []Ref {
	out := make([]Ref, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Ref{
			Text: text[loc[2]:loc[3]],
			URL:  text[loc[4]:loc[5]],
		})
	}
	return out
}

func splitRefs(spans []token.Span, find func(string) [][]int, mk func(text, url string) token.Span) []token.Span {
	out := make([]token.Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != token.Plain {
			out = append(out, s)
			continue
		}
		locs := find(s.Text)
		if len(locs) == 0 {
			out = append(out, s)
			continue
		}
		rest := 0
		for _, loc := range locs {
			if lead := s.Text[rest:loc[0]]; lead != "" {
				out = append(out, token.NewText(lead))
			}
			out = append(out, mk(s.Text[loc[2]:loc[3]], s.Text[loc[4]:loc[5]]))
			rest = loc[1]
		}
		if tail := s.Text[rest:]; tail != "" {
			out = append(out, token.NewText(tail))
		}
	}
	return out
}
