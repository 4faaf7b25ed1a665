package document

// Handler is the conversion pipeline an extension is routed through.
type Handler int

const (
	HandlerNone Handler = iota
	// HandlerStructural ignores the OCR flag.
	HandlerStructural
	// HandlerStructuralOCR recognises raster content when OCR is on.
	HandlerStructuralOCR
)

func (h Handler) String() string {
	switch h {
	case HandlerStructural:
		return "structural"
	case HandlerStructuralOCR:
		return "structural+ocr"
	default:
		return "none"
	}
}

var handlers = map[string]Handler{
	".pdf":  HandlerStructuralOCR,
	".png":  HandlerStructuralOCR,
	".jpg":  HandlerStructuralOCR,
	".jpeg": HandlerStructuralOCR,
	".tiff": HandlerStructuralOCR,
	".bmp":  HandlerStructuralOCR,

	".doc":   HandlerStructural,
	".docx":  HandlerStructural,
	".ppt":   HandlerStructural,
	".pptx":  HandlerStructural,
	".xls":   HandlerStructural,
	".xlsx":  HandlerStructural,
	".html":  HandlerStructural,
	".xhtml": HandlerStructural,
}

// HandlerFor returns the handler for a lower-case extension.
func HandlerFor(ext string) (Handler, bool) {
	h, ok := handlers[ext]
	return h, ok
}
