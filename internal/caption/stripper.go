package caption

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
)

var (
	reIndex     = regexp.MustCompile(`^\d+$`)
	reTimestamp = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}$`)
)

// Strip removes SRT cue numbers and their timing lines, keeping spoken
// text and blank separators in order. Lines that do not form an
// index+timestamp pair are left alone.
func Strip(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(content, "\n")

	// Stack-based so that a pair exposed by a removal is removed too,
	// which keeps Strip idempotent.
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		kept = append(kept, line)
		n := len(kept)
		if n >= 2 && isIndexLine(kept[n-2]) && isTimestampLine(kept[n-1]) {
			kept = kept[:n-2]
		}
	}

	return strings.TrimFunc(strings.Join(kept, "\n"), isSpaceOrBOM)
}

// StripFile reads an SRT file as UTF-8 and returns Strip of its content.
func StripFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errs.New(errs.InputNotFound, "read srt", err)
		}
		return "", errs.New(errs.IOFailure, "read srt", err)
	}
	return Strip(string(data)), nil
}

func isIndexLine(line string) bool {
	return reIndex.MatchString(strings.TrimFunc(line, isSpaceOrBOM))
}

func isTimestampLine(line string) bool {
	return reTimestamp.MatchString(strings.TrimFunc(line, isSpaceOrBOM))
}

// isSpaceOrBOM treats a byte order mark anywhere at a line edge as padding.
func isSpaceOrBOM(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
