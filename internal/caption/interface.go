package caption

import (
	"context"
	"io"
)

// VTTParser turns a WebVTT transcript into plain text.
type VTTParser interface {
	Parse(ctx context.Context, r io.Reader) (string, error)
}
