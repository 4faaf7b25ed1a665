package document

import (
	"context"
	"fmt"

	"code.sajari.com/docconv"
)

// docconvConverter handles pdf text layers and OOXML word/slide files.
type docconvConverter struct{}

func (c *docconvConverter) Convert(ctx context.Context, src Source, ocr bool) (string, error) {
	r, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer r.Close()

	mimeType := docconv.MimeTypeByExtension(src.Name())
	res, err := docconv.Convert(r, mimeType, false)
	if err != nil {
		return "", fmt.Errorf("docconv %s: %w", mimeType, err)
	}
	return res.Body, nil
}
