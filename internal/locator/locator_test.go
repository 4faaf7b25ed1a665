package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		loc  string
		want Kind
	}{
		{"srt", "/a/b/movie.srt", KindSRT},
		{"srt upper case", "/a/b/MOVIE.SRT", KindSRT},
		{"vtt", "talk.vtt", KindVTT},
		{"vtt mixed case", "talk.VtT", KindVTT},
		{"pdf", "report.pdf", KindDocument},
		{"docx", "notes.docx", KindDocument},
		{"legacy xls", "sheet.xls", KindDocument},
		{"html", "page.html", KindDocument},
		{"xhtml", "page.xhtml", KindDocument},
		{"jpeg", "scan.JPEG", KindDocument},
		{"bmp", "scan.bmp", KindDocument},
		{"http", "http://example.com/", KindURL},
		{"https", "https://example.com/watch", KindURL},
		{"https upper scheme", "HTTPS://example.com", KindURL},
		{"url with pdf suffix", "https://example.com/a.pdf", KindURL},
		{"url with srt suffix", "http://example.com/a.srt", KindURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	for _, loc := range []string{"movie.xyz", "notes.txt", "README", "archive.srt.gz"} {
		t.Run(loc, func(t *testing.T) {
			got, err := Classify(loc)
			require.Error(t, err)
			assert.Equal(t, KindUnknown, got)
			assert.Equal(t, errs.UnsupportedFormat, errs.KindOf(err))
		})
	}
}

func TestClassifyTotalOverSupportedExtensions(t *testing.T) {
	for _, ext := range SupportedExtensions() {
		first, err := Classify("file" + ext)
		require.NoError(t, err, ext)
		assert.NotEqual(t, KindUnknown, first)

		second, err := Classify("file" + ext)
		require.NoError(t, err)
		assert.Equal(t, first, second, "classification of %s is not deterministic", ext)
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	assert.Len(t, exts, 16)
	assert.Contains(t, exts, ".srt")
	assert.Contains(t, exts, ".vtt")
	assert.IsIncreasing(t, exts)
}
