package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/caption-text/pkg/executor"
)

// legacyConverter upgrades binary office files (doc, ppt, xls) to their
// OOXML twin with LibreOffice and hands the result to next.
type legacyConverter struct {
	executor executor.Executor
	binary   string
	target   string
	next     Converter
}

func newLegacyConverter(exec executor.Executor, binary, target string, next Converter) *legacyConverter {
	return &legacyConverter{
		executor: exec,
		binary:   binary,
		target:   target,
		next:     next,
	}
}

func (c *legacyConverter) Convert(ctx context.Context, src Source, ocr bool) (string, error) {
	workDir, err := os.MkdirTemp("", "caption-text-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	input := src.Path
	if input == "" {
		input = filepath.Join(workDir, src.Name())
		if err := os.WriteFile(input, src.Data, 0644); err != nil {
			return "", fmt.Errorf("stage %s: %w", src.Name(), err)
		}
	}
	input, err = filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", src.Name(), err)
	}

	outDir := filepath.Join(workDir, "out")
	if err := os.Mkdir(outDir, 0755); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}

	args := []string{"--headless", "--convert-to", c.target, "--outdir", outDir, input}
	if _, err := c.executor.ExecuteInDir(ctx, workDir, c.binary, args...); err != nil {
		return "", fmt.Errorf("convert %s to %s: %w", src.Name(), c.target, err)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	converted := filepath.Join(outDir, base+"."+c.target)
	if _, err := os.Stat(converted); err != nil {
		return "", fmt.Errorf("no %s output from %s: %w", c.target, c.binary, err)
	}

	return c.next.Convert(ctx, Source{Path: converted, Ext: "." + c.target}, ocr)
}
