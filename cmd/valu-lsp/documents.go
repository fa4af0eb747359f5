package main

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/signadot/valu/format"
	"github.com/signadot/valu/parse"
	"github.com/signadot/valu/value"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	format  format.Format
	value   value.Value
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	f := documentFormat(uri)
	v, err := parse.Parse([]byte(content), parse.ParseFormat(f))
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		format:  f,
		value:   v,
		err:     err,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// documentFormat picks the format from the uri suffix, YAML otherwise.
func documentFormat(uri string) format.Format {
	if f, ok := format.FromSuffix(uri); ok {
		return f
	}
	return format.YAMLFormat
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	pos := errorPosition(doc.content, doc.err)
	end := pos
	end.Character++
	res = append(res, protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: end},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	})
	return res
}

// yamlPos matches the "[line:col]" prefix of YAML errors, both 1-based.
var yamlPos = regexp.MustCompile(`\[(\d+):(\d+)\]`)

func errorPosition(content string, err error) protocol.Position {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		off := int(syn.Offset)
		if off > 0 {
			off--
		}
		return offsetToPosition(content, off)
	}
	m := yamlPos.FindStringSubmatch(err.Error())
	if m == nil {
		return protocol.Position{}
	}
	line, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	if line > 0 {
		line--
	}
	if col > 0 {
		col--
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

// offsetToPosition converts a byte offset in content to a line and rune
// column.
func offsetToPosition(content string, off int) protocol.Position {
	var pos protocol.Position
	for i, r := range content {
		if i >= off {
			break
		}
		if r == '\n' {
			pos.Line++
			pos.Character = 0
			continue
		}
		pos.Character++
	}
	return pos
}

// positionToOffset is the inverse of offsetToPosition, clamped to the
// length of content.
func positionToOffset(content string, pos protocol.Position) int {
	var line, col uint32
	for i, r := range content {
		if line == pos.Line && col == pos.Character {
			return i
		}
		if r == '\n' {
			if line == pos.Line {
				return i
			}
			line++
			col = 0
			continue
		}
		col++
	}
	return len(content)
}

// applyChange applies one content change to content. A zero range
// replaces the whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) {
		return change.Text
	}
	start := positionToOffset(content, r.Start)
	end := positionToOffset(content, r.End)
	if end < start {
		start, end = end, start
	}
	return content[:start] + change.Text + content[end:]
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
