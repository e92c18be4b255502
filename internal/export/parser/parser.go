package parser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-modelexport/pkg/export"
)

// Parser implements export.Parser over JSON export documents. The decoder is
// strict about shape: the top level must be an array, and every element must
// be an object. Field-level laxity lives downstream in the record builder.
type Parser struct {
	allowEmpty bool
}

// Ensure the implementation satisfies the public interface.
var _ export.Parser = (*Parser)(nil)

// New constructs a Parser from pre-resolved options.
func New(options export.ParserOptions) export.Parser {
	return &Parser{allowEmpty: options.AllowEmpty}
}

// Entries decodes the document payload into its ordered entry sequence.
func (p *Parser) Entries(ctx context.Context, doc export.Document) ([]export.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, export.NewParseError(doc.Location(), "document is empty", nil)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		// Distinguish "not JSON at all" from "JSON of the wrong shape" so the
		// operator knows whether to fix the file or the export step.
		var probe any
		if probeErr := json.Unmarshal(raw, &probe); probeErr != nil {
			return nil, export.NewParseError(doc.Location(), "invalid JSON", probeErr)
		}
		return nil, export.NewParseError(doc.Location(), fmt.Sprintf("expected a top-level array, got %s", jsonKind(raw)), err)
	}

	if len(elements) == 0 && !p.allowEmpty {
		return nil, export.NewParseError(doc.Location(), "document has no entries", nil)
	}

	entries := make([]export.Entry, 0, len(elements))
	for i, element := range elements {
		var entry map[string]any
		if err := json.Unmarshal(element, &entry); err != nil {
			return nil, export.NewParseError(doc.Location(), fmt.Sprintf("entry %d is not an object", i), err)
		}
		// A null element decodes into a nil map without error.
		if entry == nil {
			return nil, export.NewParseError(doc.Location(), fmt.Sprintf("entry %d is not an object", i), nil)
		}
		entries = append(entries, export.Entry(entry))
	}
	return entries, nil
}

// jsonKind names the top-level JSON value for error messages.
func jsonKind(raw []byte) string {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return "an object"
		case '"':
			return "a string"
		case 't', 'f':
			return "a boolean"
		case 'n':
			return "null"
		default:
			return "a number"
		}
	}
	return "an empty document"
}
