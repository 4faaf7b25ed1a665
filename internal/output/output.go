package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
	"github.com/nguyentantai21042004/caption-text/internal/locator"
)

// Resolve picks the file the extracted text is written to. An explicit
// target always wins; otherwise the input's sibling with a .txt
// extension is used. URLs have no sibling and need an explicit target.
func Resolve(loc, explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", errs.New(errs.OutputWriteFailure, "resolve output", err)
		}
		return abs, nil
	}

	if locator.IsURL(loc) {
		return "", errs.Newf(errs.MissingOutputTarget, "resolve output", "an output path is required for %s", loc)
	}

	abs, err := filepath.Abs(loc)
	if err != nil {
		return "", errs.New(errs.OutputWriteFailure, "resolve output", err)
	}
	return strings.TrimSuffix(abs, filepath.Ext(abs)) + ".txt", nil
}

// Write replaces target with text. Parent directories are not created.
func Write(target, text string) error {
	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return errs.New(errs.OutputWriteFailure, "write output", fmt.Errorf("write %s: %w", target, err))
	}
	return nil
}
