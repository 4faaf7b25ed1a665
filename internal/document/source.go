package document

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Source is the input handed to a Converter: either a local file or the
// bytes of a fetched URL.
type Source struct {
	Path string
	Data []byte
	// Ext is lower-case and includes the dot.
	Ext string
	// BaseURL is set for fetched documents and used to resolve links.
	BaseURL string
}

// Open returns a reader over the source content. Callers close it.
func (s Source) Open() (io.ReadCloser, error) {
	if s.Data != nil {
		return io.NopCloser(bytes.NewReader(s.Data)), nil
	}
	return os.Open(s.Path)
}

// Bytes returns the whole source content.
func (s Source) Bytes() ([]byte, error) {
	if s.Data != nil {
		return s.Data, nil
	}
	return os.ReadFile(s.Path)
}

// Name is a file name carrying the source extension.
func (s Source) Name() string {
	if s.Path != "" {
		return filepath.Base(s.Path)
	}
	return "document" + s.Ext
}
