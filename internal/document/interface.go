package document

import "context"

// Extractor turns a document path or URL into markdown-flavoured text.
type Extractor interface {
	Extract(ctx context.Context, loc string, ocr bool) (string, error)
}

// Converter is one conversion backend. ocr is only honoured by backends
// that can recognise raster content.
type Converter interface {
	Convert(ctx context.Context, src Source, ocr bool) (string, error)
}

// recognizer is the OCR engine used by the pdf and image converters.
type recognizer interface {
	Image(ctx context.Context, data []byte) (string, error)
	PDF(ctx context.Context, src Source) (string, error)
}
