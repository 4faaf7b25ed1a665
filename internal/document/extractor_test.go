package document

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/caption-text/internal/config"
	"github.com/nguyentantai21042004/caption-text/internal/errs"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
)

func newTestExtractor(converters map[string]Converter) Extractor {
	return NewWithConverters(converters, nil, "caption-text-test", logger.NewNop())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractLocalDocument(t *testing.T) {
	pdf := &fakeConverter{text: "# Report\r\n\r\n\r\n\r\nBody text   \n"}
	ext := newTestExtractor(map[string]Converter{".pdf": pdf})
	path := writeFile(t, "Report.PDF", "%PDF-1.4")

	got, err := ext.Extract(context.Background(), path, true)
	require.NoError(t, err)
	assert.Equal(t, "# Report\n\nBody text", got)

	require.Len(t, pdf.calls, 1)
	assert.Equal(t, path, pdf.calls[0].src.Path)
	assert.Equal(t, ".pdf", pdf.calls[0].src.Ext)
	assert.True(t, pdf.calls[0].ocr)
}

func TestExtractMissingFile(t *testing.T) {
	pdf := &fakeConverter{}
	ext := newTestExtractor(map[string]Converter{".pdf": pdf})

	_, err := ext.Extract(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"), false)
	require.Error(t, err)
	assert.Equal(t, errs.InputNotFound, errs.KindOf(err))
	assert.Empty(t, pdf.calls)
}

func TestExtractDirectory(t *testing.T) {
	_, err := newTestExtractor(nil).Extract(context.Background(), t.TempDir(), false)
	require.Error(t, err)
	assert.Equal(t, errs.IOFailure, errs.KindOf(err))
}

func TestExtractNoConverter(t *testing.T) {
	path := writeFile(t, "notes.odt", "x")

	_, err := newTestExtractor(map[string]Converter{}).Extract(context.Background(), path, false)
	require.Error(t, err)
	assert.Equal(t, errs.UnsupportedFormat, errs.KindOf(err))
}

func TestExtractConverterFailure(t *testing.T) {
	boom := errors.New("engine exploded")
	ext := newTestExtractor(map[string]Converter{".docx": &fakeConverter{err: boom}})
	path := writeFile(t, "memo.docx", "PK")

	_, err := ext.Extract(context.Background(), path, false)
	require.Error(t, err)
	assert.Equal(t, errs.ExternalServiceFailure, errs.KindOf(err))
	assert.ErrorIs(t, err, boom)
}

func TestExtractURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caption-text-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>hi</p>"))
	}))
	defer srv.Close()

	html := &fakeConverter{text: "hi"}
	ext := newTestExtractor(map[string]Converter{".html": html})

	got, err := ext.Extract(context.Background(), srv.URL+"/article", false)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	require.Len(t, html.calls, 1)
	src := html.calls[0].src
	assert.Equal(t, []byte("<p>hi</p>"), src.Data)
	assert.Equal(t, srv.URL+"/article", src.BaseURL)
	assert.Empty(t, src.Path)
}

func TestExtractURLContentTypeWinsOverPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	pdf := &fakeConverter{text: "pdf text"}
	html := &fakeConverter{text: "html text"}
	ext := newTestExtractor(map[string]Converter{".pdf": pdf, ".html": html})

	got, err := ext.Extract(context.Background(), srv.URL+"/download", true)
	require.NoError(t, err)
	assert.Equal(t, "pdf text", got)
	assert.Empty(t, html.calls)
	require.Len(t, pdf.calls, 1)
	assert.True(t, pdf.calls[0].ocr)
}

func TestExtractURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	html := &fakeConverter{}
	_, err := newTestExtractor(map[string]Converter{".html": html}).Extract(context.Background(), srv.URL, false)
	require.Error(t, err)
	assert.Equal(t, errs.ExternalServiceFailure, errs.KindOf(err))
	assert.Contains(t, err.Error(), "404")
	assert.Empty(t, html.calls)
}

func TestExtractURLBodyTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<p>0123456789</p>"))
	}))
	defer srv.Close()

	html := &fakeConverter{text: "hi"}
	ext := newTestExtractor(map[string]Converter{".html": html}).(*implExtractor)
	ext.maxFetchBytes = 8

	_, err := ext.Extract(context.Background(), srv.URL, false)
	require.Error(t, err)
	assert.Equal(t, errs.ExternalServiceFailure, errs.KindOf(err))
	assert.Contains(t, err.Error(), "exceeds 8 bytes")
	assert.Empty(t, html.calls)

	ext.maxFetchBytes = int64(len("<p>0123456789</p>"))
	got, err := ext.Extract(context.Background(), srv.URL, false)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestExtractURLUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestExtractor(map[string]Converter{}).Extract(context.Background(), url, false)
	require.Error(t, err)
	assert.Equal(t, errs.ExternalServiceFailure, errs.KindOf(err))
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		path        string
		want        string
	}{
		{"text/html; charset=utf-8", "/", ".html"},
		{"application/pdf", "/file", ".pdf"},
		{"image/jpeg", "/a.png", ".jpg"},
		{"application/octet-stream", "/files/report.docx", ".docx"},
		{"", "/scan.TIFF", ".tiff"},
		{"text/plain", "/readme.txt", ".html"},
		{"", "", ".html"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, extensionFor(tt.contentType, tt.path))
		})
	}
}

func TestHandlerTableCoversConverters(t *testing.T) {
	ext := New(config.Default().Conversion, &fakeSoffice{}, logger.NewNop()).(*implExtractor)

	for name := range handlers {
		_, ok := ext.converters[name]
		assert.True(t, ok, "no converter for %s", name)
	}
	assert.Len(t, ext.converters, len(handlers))
	assert.Equal(t, config.Default().Conversion.MaxFetchBytes, ext.maxFetchBytes)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a\n\nb", normalize("\n\na  \r\n\n\n\n\nb\t\n\n"))
	assert.Equal(t, "", normalize("   \n\n"))
}
