package port

import (
	"context"
	"errors"
)

// ErrNoText signals that a document yielded no usable text: every page was
// empty or whitespace-only, or the file could not be read as a PDF at all.
var ErrNoText = errors.New("no text could be extracted from document")

// TextExtractor converts raw document bytes into plain UTF-8 text.
// Implementations return an error wrapping ErrNoText when nothing usable
// came out; the orchestrator turns that into a whole-record sentinel rather
// than aborting the batch.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
