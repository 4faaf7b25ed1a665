package document

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

type tesseract struct {
	languages []string
	dpi       float64
}

func newTesseract(languages []string, dpi float64) *tesseract {
	return &tesseract{languages: languages, dpi: dpi}
}

func (t *tesseract) newClient() (*gosseract.Client, error) {
	client := gosseract.NewClient()
	if len(t.languages) > 0 {
		if err := client.SetLanguage(t.languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("set ocr languages: %w", err)
		}
	}
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		client.Close()
		return nil, fmt.Errorf("set ocr variable: %w", err)
	}
	return client, nil
}

// Image recognises a single encoded raster image.
func (t *tesseract) Image(ctx context.Context, data []byte) (string, error) {
	client, err := t.newClient()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return text, nil
}

// PDF renders every page at the configured DPI and recognises it.
// Pages are separated by a blank line.
func (t *tesseract) PDF(ctx context.Context, src Source) (string, error) {
	var (
		doc *fitz.Document
		err error
	)
	if src.Data != nil {
		doc, err = fitz.NewFromMemory(src.Data)
	} else {
		doc, err = fitz.New(src.Path)
	}
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	client, err := t.newClient()
	if err != nil {
		return "", err
	}
	defer client.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		img, err := doc.ImageDPI(n, t.dpi)
		if err != nil {
			return "", fmt.Errorf("render page %d: %w", n+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("encode page %d: %w", n+1, err)
		}
		if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
			return "", fmt.Errorf("load page %d: %w", n+1, err)
		}

		text, err := client.Text()
		if err != nil {
			return "", fmt.Errorf("ocr page %d: %w", n+1, err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return strings.Join(pages, "\n\n"), nil
}
