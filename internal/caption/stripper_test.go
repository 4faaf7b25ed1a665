package caption

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,000
Hello world.

2
00:00:03,000 --> 00:00:04,000
Goodbye.
`

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two cues",
			input: sampleSRT,
			want:  "Hello world.\n\nGoodbye.",
		},
		{
			name:  "multi line cue",
			input: "1\n00:00:01,000 --> 00:00:02,000\nfirst line\nsecond line\n",
			want:  "first line\nsecond line",
		},
		{
			name:  "crlf line endings",
			input: "1\r\n00:00:01,000 --> 00:00:02,000\r\nHi.\r\n",
			want:  "Hi.",
		},
		{
			name:  "byte order mark",
			input: "\ufeff1\n00:00:01,000 --> 00:00:02,000\nHi.",
			want:  "Hi.",
		},
		{
			name:  "byte order mark behind leading space",
			input: " \ufeff1\n00:00:01,000 --> 00:00:02,000\nHi.",
			want:  "Hi.",
		},
		{
			name:  "malformed timestamp left untouched",
			input: "1\n00:00:01.000 --> 00:00:02.000\nHi.",
			want:  "1\n00:00:01.000 --> 00:00:02.000\nHi.",
		},
		{
			name:  "index without timestamp left untouched",
			input: "42\nThe answer.",
			want:  "42\nThe answer.",
		},
		{
			name:  "no captions",
			input: "  just text  \n",
			want:  "just text",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

func TestStripRemovesAllMetadata(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 50; i++ {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("1", i%3+1))
		b.WriteString("\n00:01:02,345 --> 00:01:03,456\n")
		b.WriteString("line of speech\n")
	}

	got := Strip(b.String())
	for _, line := range strings.Split(got, "\n") {
		assert.False(t, isTimestampLine(line), "timestamp left behind: %q", line)
		assert.False(t, isIndexLine(line), "index left behind: %q", line)
	}
	assert.Equal(t, 50, strings.Count(got, "line of speech"))
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		sampleSRT,
		"1\n1\n00:00:01,000 --> 00:00:02,000\n00:00:01,000 --> 00:00:02,000\n",
		"  7\n00:00:01,000 --> 00:00:02,000\ntext",
		"free text\n\n\n3\n",
		" \ufeff1\n00:00:01,000 --> 00:00:02,000\nHi.",
		" \ufeffplain line",
	}

	for _, in := range inputs {
		once := Strip(in)
		assert.Equal(t, once, Strip(once), "input %q", in)
	}
}

func TestStripFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.srt")
	require.NoError(t, os.WriteFile(path, []byte(sampleSRT), 0644))

	got, err := StripFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world.\n\nGoodbye.", got)
}

func TestStripFileMissing(t *testing.T) {
	_, err := StripFile(filepath.Join(t.TempDir(), "missing.srt"))
	require.Error(t, err)
	assert.Equal(t, errs.InputNotFound, errs.KindOf(err))
}

func TestStripFileDirectory(t *testing.T) {
	_, err := StripFile(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errs.IOFailure, errs.KindOf(err))
}
