package caption

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/asticode/go-astisub"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
)

// reInlineTag matches cue markup the tokenizer leaves in text, such as
// karaoke timestamps like <00:00:01.500>.
var reInlineTag = regexp.MustCompile(`<[^>]*>`)

type implVTTParser struct{}

// NewVTTParser returns a VTTParser backed by go-astisub.
func NewVTTParser() VTTParser {
	return &implVTTParser{}
}

// Parse emits every cue line in order. Consecutive repeats, as produced
// by rolling auto-captions, are written once.
func (p *implVTTParser) Parse(ctx context.Context, r io.Reader) (string, error) {
	subs, err := astisub.ReadFromWebVTT(r)
	if err != nil {
		return "", fmt.Errorf("read webvtt: %w", err)
	}

	var (
		out  []string
		last string
	)
	for _, item := range subs.Items {
		for _, line := range item.Lines {
			text := cueText(line)
			if text == "" || text == last {
				continue
			}
			out = append(out, text)
			last = text
		}
	}

	return strings.Join(out, "\n"), nil
}

// cueText joins the plain text of a cue line with inline tags removed
// and whitespace collapsed.
func cueText(line astisub.Line) string {
	var parts []string
	for _, item := range line.Items {
		if t := reInlineTag.ReplaceAllString(item.Text, ""); strings.TrimSpace(t) != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// ParseVTTFile opens path and hands it to parser. The file is closed
// before returning on every path.
func ParseVTTFile(ctx context.Context, parser VTTParser, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errs.New(errs.InputNotFound, "open vtt", err)
		}
		return "", errs.New(errs.IOFailure, "open vtt", err)
	}
	defer f.Close()

	text, err := parser.Parse(ctx, f)
	if err != nil {
		return "", errs.New(errs.ExternalServiceFailure, "parse vtt", err)
	}
	return text, nil
}
