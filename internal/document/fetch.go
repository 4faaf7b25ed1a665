package document

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
	"github.com/nguyentantai21042004/caption-text/internal/locator"
)

var mimeExtensions = map[string]string{
	"text/html":                     ".html",
	"application/xhtml+xml":         ".xhtml",
	"application/pdf":               ".pdf",
	"image/png":                     ".png",
	"image/jpeg":                    ".jpg",
	"image/tiff":                    ".tiff",
	"image/bmp":                     ".bmp",
	"application/msword":            ".doc",
	"application/vnd.ms-excel":      ".xls",
	"application/vnd.ms-powerpoint": ".ppt",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   ".docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         ".xlsx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",
}

// fetch downloads rawURL and picks the converter extension from the
// response Content-Type, falling back to the URL path and then HTML.
func (e *implExtractor) fetch(ctx context.Context, rawURL string) (Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Source{}, errs.New(errs.ExternalServiceFailure, "fetch url", err)
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	e.logger.Info(ctx, "Fetching %s", rawURL)

	resp, err := e.client.Do(req)
	if err != nil {
		return Source{}, errs.New(errs.ExternalServiceFailure, "fetch url", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Source{}, errs.Newf(errs.ExternalServiceFailure, "fetch url", "GET %s: unexpected status %s", rawURL, resp.Status)
	}

	// One byte past the limit tells a full body from a truncated one.
	data, err := io.ReadAll(io.LimitReader(resp.Body, e.maxFetchBytes+1))
	if err != nil {
		return Source{}, errs.New(errs.ExternalServiceFailure, "fetch url", fmt.Errorf("read body: %w", err))
	}
	if int64(len(data)) > e.maxFetchBytes {
		return Source{}, errs.Newf(errs.ExternalServiceFailure, "fetch url", "GET %s: body exceeds %d bytes", rawURL, e.maxFetchBytes)
	}

	finalURL := rawURL
	urlPath := ""
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
		urlPath = resp.Request.URL.Path
	}

	return Source{
		Data:    data,
		Ext:     extensionFor(resp.Header.Get("Content-Type"), urlPath),
		BaseURL: finalURL,
	}, nil
}

func extensionFor(contentType, urlPath string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		if ext, ok := mimeExtensions[mt]; ok {
			return ext
		}
	}
	if ext := locator.Extension(urlPath); ext != "" {
		if _, ok := HandlerFor(ext); ok {
			return ext
		}
	}
	return ".html"
}
