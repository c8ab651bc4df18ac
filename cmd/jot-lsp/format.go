package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/jot-format/go-jot"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	// A document with outright errors is not rewritten. Formatting the
	// recovered tree would replace the broken text the user is still
	// typing.
	formatted, diags, err := jot.FormatString(doc.content)
	if err != nil || diags.HasErrors() {
		return nil, nil
	}

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// One edit covering the whole document.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
