package document

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
	"github.com/nguyentantai21042004/caption-text/internal/locator"
)

var reBlankRuns = regexp.MustCompile(`\n{3,}`)

// Extract converts a local document or a URL in a single attempt.
func (e *implExtractor) Extract(ctx context.Context, loc string, ocr bool) (string, error) {
	var src Source
	if locator.IsURL(loc) {
		fetched, err := e.fetch(ctx, loc)
		if err != nil {
			return "", err
		}
		src = fetched
	} else {
		info, err := os.Stat(loc)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", errs.New(errs.InputNotFound, "stat document", err)
			}
			return "", errs.New(errs.IOFailure, "stat document", err)
		}
		if info.IsDir() {
			return "", errs.Newf(errs.IOFailure, "stat document", "%s is a directory", loc)
		}
		src = Source{Path: loc, Ext: locator.Extension(loc)}
	}

	conv, ok := e.converters[src.Ext]
	if !ok {
		if src.BaseURL != "" {
			return "", errs.Newf(errs.ExternalServiceFailure, "convert", "unsupported content at %s (%s)", src.BaseURL, src.Ext)
		}
		return "", errs.Newf(errs.UnsupportedFormat, "convert", "no converter for %q", src.Ext)
	}

	handler, _ := HandlerFor(src.Ext)
	e.logger.Debug(ctx, "Converting %s via %s pipeline (ocr: %t)", src.Name(), handler, ocr && handler == HandlerStructuralOCR)

	text, err := conv.Convert(ctx, src, ocr)
	if err != nil {
		return "", errs.New(errs.ExternalServiceFailure, "convert "+src.Name(), err)
	}

	return normalize(text), nil
}

// normalize unifies line endings, trims trailing blanks on each line and
// collapses runs of empty lines.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	text = reBlankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}
