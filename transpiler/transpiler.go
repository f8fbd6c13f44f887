package transpiler

import (
	"fmt"
	"io"
	"sort"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
	"golang.org/x/net/html"

	"github.com/insomnimus/mdtree/ast"
	"github.com/insomnimus/mdtree/config"
	"github.com/insomnimus/mdtree/logging"
	"github.com/insomnimus/mdtree/parser"
)

const mimeHTML = "text/html"

// Document is the result of converting one markdown source.
type Document struct {
	Title    string
	Body     string
	Root     *ast.Node
	Blocks   int
	Meta     map[string]string
	Warnings []*parser.Warning
}

type Transpiler struct {
	cfg       config.Config
	log       logging.Logger
	sanitizer *bluemonday.Policy
	minifier  *minify.M
}

// New returns a Transpiler for cfg. A nil logger discards log entries.
func New(cfg config.Config, logger logging.Logger) *Transpiler {
	if logger == nil {
		logger = logging.NoOp()
	}
	t := &Transpiler{cfg: cfg, log: logger}
	if cfg.Sanitize {
		t.sanitizer = bluemonday.UGCPolicy()
	}
	if cfg.Minify {
		t.minifier = minify.New()
		t.minifier.AddFunc(mimeHTML, minhtml.Minify)
	}
	return t
}

// ToHTML converts the markdown read from stdin with the default configuration.
func ToHTML(stdin io.Reader, stdout, stderr io.Writer) error {
	return New(config.DefaultConfig(), nil).ToHTML(stdin, stdout, stderr)
}

// ToHTML reads markdown from stdin and writes HTML to stdout. Warnings about
// blocks that fell back to paragraphs go to stderr.
func (t *Transpiler) ToHTML(stdin io.Reader, stdout, stderr io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return wrapIOError(err, "read markdown input")
	}
	doc, err := t.Transpile(data)
	if err != nil {
		return err
	}
	for _, w := range doc.Warnings {
		fmt.Fprintln(stderr, w)
	}
	if !t.cfg.Standalone {
		_, err = io.WriteString(stdout, doc.Body)
		return wrapIOError(err, "write html output")
	}
	return wrapIOError(writePage(stdout, doc), "write html output")
}

// Transpile converts src into a rendered document.
func (t *Transpiler) Transpile(src []byte) (*Document, error) {
	t.log.Debug("transpile.start", "bytes", len(src))

	p, err := t.parser(src)
	if err != nil {
		t.log.Error("transpile.front_matter.failed", "error", err)
		return nil, wrapError(err)
	}
	root, err := p.Parse()
	if err != nil {
		t.log.Error("transpile.parse.failed", "error", err)
		return nil, wrapError(err)
	}
	body, err := root.Render()
	if err != nil {
		t.log.Error("transpile.render.failed", "error", err)
		return nil, wrapError(err)
	}
	if t.sanitizer != nil {
		body = t.sanitizer.Sanitize(body)
	}
	if t.minifier != nil {
		if body, err = t.minifier.String(mimeHTML, body); err != nil {
			t.log.Error("transpile.minify.failed", "error", err)
			return nil, wrapError(err)
		}
	}

	doc := &Document{
		Body:     body,
		Root:     root,
		Blocks:   p.Len(),
		Meta:     p.Metas(),
		Warnings: p.Warnings(),
	}
	if title, ok := p.Meta("title"); ok && title != "" {
		doc.Title = title
	} else if title, err := p.Title(); err == nil {
		doc.Title = title
	}

	keys := make([]string, 0, len(doc.Meta))
	for key := range doc.Meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		t.log.Debug("transpile.meta", "key", key, "value", doc.Meta[key])
	}
	for _, w := range doc.Warnings {
		t.log.Warn("transpile.warning", "line", w.Line, "warning", w.String())
	}
	t.log.Info("transpile.done", "blocks", doc.Blocks, "warnings", len(doc.Warnings))
	return doc, nil
}

func (t *Transpiler) parser(src []byte) (*parser.Parser, error) {
	if !t.cfg.FrontMatter {
		return parser.New(string(src)), nil
	}
	return parser.NewDocument(src)
}

func writePage(w io.Writer, doc *Document) error {
	page := "<!DOCTYPE html>\n<html>\n"
	if doc.Title != "" {
		page += fmt.Sprintf("<head>\n<title>%s</title>\n</head>\n", html.EscapeString(doc.Title))
	}
	page += "<body>\n" + doc.Body + "\n</body>\n</html>\n"
	_, err := io.WriteString(w, page)
	return err
}
