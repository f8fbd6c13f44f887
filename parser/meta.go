package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// NewDocument is like New but first strips a YAML or TOML front matter
// block from src and records its top-level keys as metas.
func NewDocument(src []byte) (*Parser, error) {
	var fields map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(src), &fields)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	p := New(string(body))
	p.offset = bytes.Count(src, []byte("\n")) - bytes.Count(body, []byte("\n"))
	for key, val := range fields {
		p.meta[key] = strings.TrimSpace(fmt.Sprint(val))
	}
	return p, nil
}

func (p *Parser) Metas() map[string]string {
	return p.meta
}

func (p *Parser) Meta(key string) (string, bool) {
	val, ok := p.meta[key]
	return val, ok
}
