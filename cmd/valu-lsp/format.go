package main

import (
	"bytes"
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/valu/encode"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	return formatEdits(doc, int(params.Options.TabSize))
}

// formatEdits re-encodes doc and returns a single edit replacing the
// whole document, or no edits when it is already formatted.
func formatEdits(doc *document, indent int) ([]protocol.TextEdit, error) {
	opts := []encode.EncodeOption{encode.EncodeFormat(doc.format)}
	if indent > 0 {
		opts = append(opts, encode.Indent(indent))
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.value, &buf, opts...); err != nil {
		return nil, err
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if doc.content != "" && !strings.HasSuffix(doc.content, "\n") {
		lines++
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			End: protocol.Position{Line: uint32(lines)},
		},
		NewText: formatted,
	}}, nil
}
