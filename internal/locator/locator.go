package locator

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
)

// Kind is the input category an extractor is chosen by.
type Kind int

const (
	KindUnknown Kind = iota
	KindSRT
	KindVTT
	KindDocument
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindSRT:
		return "srt"
	case KindVTT:
		return "vtt"
	case KindDocument:
		return "document"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

var documentExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	".html": {}, ".xhtml": {},
	".png": {}, ".jpeg": {}, ".jpg": {}, ".tiff": {}, ".bmp": {},
}

// Classify maps a path or URL to its Kind. URL scheme wins over extension.
func Classify(loc string) (Kind, error) {
	if IsURL(loc) {
		return KindURL, nil
	}

	switch ext := Extension(loc); ext {
	case ".srt":
		return KindSRT, nil
	case ".vtt":
		return KindVTT, nil
	default:
		if _, ok := documentExtensions[ext]; ok {
			return KindDocument, nil
		}
		if ext == "" {
			return KindUnknown, errs.Newf(errs.UnsupportedFormat, "classify", "%s has no file extension", filepath.Base(loc))
		}
		return KindUnknown, errs.Newf(errs.UnsupportedFormat, "classify", "unsupported file format %q", ext)
	}
}

// IsURL reports whether loc carries an http or https scheme.
func IsURL(loc string) bool {
	lower := strings.ToLower(loc)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Extension returns the lower-cased extension of loc, including the dot.
func Extension(loc string) string {
	return strings.ToLower(filepath.Ext(loc))
}

// SupportedExtensions lists every file extension Classify accepts, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(documentExtensions)+2)
	exts = append(exts, ".srt", ".vtt")
	for ext := range documentExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
