package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type fakeConverter struct {
	text  string
	err   error
	calls []fakeCall
}

type fakeCall struct {
	src Source
	ocr bool
}

func (f *fakeConverter) Convert(ctx context.Context, src Source, ocr bool) (string, error) {
	f.calls = append(f.calls, fakeCall{src: src, ocr: ocr})
	return f.text, f.err
}

type fakeRecognizer struct {
	imageCalls int
	pdfCalls   int
}

func (f *fakeRecognizer) Image(ctx context.Context, data []byte) (string, error) {
	f.imageCalls++
	return "recognised image", nil
}

func (f *fakeRecognizer) PDF(ctx context.Context, src Source) (string, error) {
	f.pdfCalls++
	return "recognised pdf", nil
}

// fakeSoffice mimics `soffice --convert-to <ext> --outdir <dir> <file>`.
type fakeSoffice struct {
	fail bool
	dirs []string
	args [][]string
}

func (f *fakeSoffice) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeSoffice) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.dirs = append(f.dirs, dir)
	f.args = append(f.args, args)
	if f.fail {
		return "", errors.New("soffice crashed")
	}

	var target, outDir string
	for i := 0; i < len(args)-1; i++ {
		switch args[i] {
		case "--convert-to":
			target = args[i+1]
		case "--outdir":
			outDir = args[i+1]
		}
	}
	input := args[len(args)-1]
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return "", os.WriteFile(filepath.Join(outDir, base+"."+target), []byte("converted"), 0644)
}
