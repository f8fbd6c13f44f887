package token

import "fmt"

// Kind is the style of an inline span.
type Kind uint8

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// HasURL reports whether spans of this kind carry a destination.
func (k Kind) HasURL() bool { return k == Link || k == Image }

// Span is a typed run of inline text.
// Two spans are equal when Text, Kind and URL are equal, so == works.
// URL is only meaningful when Kind.HasURL() and stays empty otherwise;
// build spans with New, NewLink and NewImage to keep it that way.
type Span struct {
	Text string
	Kind Kind
	URL  string
}

// New returns a span without a destination. Link and Image kinds
// passed here end up with an empty URL.
func New(text string, k Kind) Span { return Span{Text: text, Kind: k} }

func NewText(text string) Span { return Span{Text: text, Kind: Plain} }

func NewLink(label, url string) Span { return Span{Text: label, Kind: Link, URL: url} }

func NewImage(alt, url string) Span { return Span{Text: alt, Kind: Image, URL: url} }

// Destination returns the span's URL and whether the span has one.
func (s Span) Destination() (string, bool) {
	if !s.Kind.HasURL() {
		return "", false
	}
	return s.URL, true
}

func (s Span) GoString() string {
	return fmt.Sprintf("Span{\n"+
		"\tText: %q,\n"+
		"\tKind: %s,\n"+
		"\tURL: %q,\n}", s.Text, s.Kind, s.URL)
}

func (s Span) String() string {
	if s.Kind.HasURL() {
		return fmt.Sprintf("%s(%q, %q)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}
