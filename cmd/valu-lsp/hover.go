package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	text := hoverText(doc, params.Position)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func hoverText(doc *document, pos protocol.Position) string {
	if word := wordAt(doc.content, positionToOffset(doc.content, pos)); word != "" {
		if n, err := number.Parse(word); err == nil {
			return numberHover(n)
		}
	}
	if doc.err != nil {
		return ""
	}
	return documentHover(doc.value)
}

func isNumberRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	return strings.ContainsRune("+-._", r)
}

// wordAt returns the run of number-like runes around byte offset off.
func wordAt(content string, off int) string {
	if off > len(content) {
		off = len(content)
	}
	start := off
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(content[:start])
		if !isNumberRune(r) {
			break
		}
		start -= size
	}
	end := off
	for end < len(content) {
		r, size := utf8.DecodeRuneInString(content[end:])
		if !isNumberRune(r) {
			break
		}
		end += size
	}
	return content[start:end]
}

func numberHover(n number.Number) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Number** `%s`\n\n", n.Type())
	if i, ok := n.ToI64(); ok {
		fmt.Fprintf(&b, "- i64: `%d`\n", i)
	}
	if u, ok := n.ToU64(); ok {
		fmt.Fprintf(&b, "- u64: `%d`\n", u)
	}
	if f, ok := n.ToF64(); ok {
		fmt.Fprintf(&b, "- f64: `%g`\n", f)
	}
	if big, ok := n.ToBig(); ok {
		fmt.Fprintf(&b, "- big: `%s`\n", big)
	}
	return b.String()
}

func documentHover(v value.Value) string {
	if n, ok := v.Len(); ok {
		return fmt.Sprintf("**%s** with %d entries", v.Type(), n)
	}
	return fmt.Sprintf("**%s**", v.Type())
}
