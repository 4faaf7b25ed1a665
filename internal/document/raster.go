package document

import (
	"context"
	"fmt"
)

// imagePlaceholder stands in for a picture that was not recognised.
const imagePlaceholder = "<!-- image -->"

type pdfConverter struct {
	text Converter
	ocr  recognizer
}

func (c *pdfConverter) Convert(ctx context.Context, src Source, ocr bool) (string, error) {
	if !ocr {
		return c.text.Convert(ctx, src, false)
	}
	return c.ocr.PDF(ctx, src)
}

type imageConverter struct {
	ocr recognizer
}

func (c *imageConverter) Convert(ctx context.Context, src Source, ocr bool) (string, error) {
	if !ocr {
		return imagePlaceholder, nil
	}

	data, err := src.Bytes()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src.Name(), err)
	}
	return c.ocr.Image(ctx, data)
}
