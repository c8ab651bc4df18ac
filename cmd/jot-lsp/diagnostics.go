package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	res     *parse.Result
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put reparses the document. Parsing never fails; whatever problems the
// text has arrive as diagnostics on the stored result.
func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		res:     parse.Parse([]byte(content)),
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := diagnosticsFor(doc.res.Diags)
	s.logger.Debug("publish diagnostics",
		zap.String("uri", uri),
		zap.Int("count", len(diagnostics)))

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// diagnosticsFor converts parser diagnostics, whose positions are
// 1-based, to protocol diagnostics, whose positions are 0-based. A
// diagnostic without a position lands on the first character.
func diagnosticsFor(diags diag.List) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i := range diags {
		d := &diags[i]
		line, col := d.Line, d.Col
		if line > 0 {
			line--
		}
		if col > 0 {
			col--
		}
		severity := protocol.DiagnosticSeverityWarning
		if d.Severity == diag.Error {
			severity = protocol.DiagnosticSeverityError
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
				End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
			},
			Severity: severity,
			Code:     d.Code.String(),
			Source:   "jot",
			Message:  d.Msg,
		})
	}
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		// A zero range means the client replaced the whole document.
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			startOffset := lineColToOffset(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
			endOffset := lineColToOffset(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
			if startOffset <= endOffset && endOffset <= len(content) {
				content = content[:startOffset] + change.Text + content[endOffset:]
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset maps a 0-based line and column to a byte offset into
// content. Columns count runes, offsets count bytes.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
