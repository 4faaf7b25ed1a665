package processor

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/caption-text/internal/errs"
	"github.com/nguyentantai21042004/caption-text/internal/locator"
)

// Options is fixed for the lifetime of one request.
type Options struct {
	OCREnabled bool
}

// Request is one extraction to run.
type Request struct {
	// Locator is a file path or an http(s) URL.
	Locator string
	Options Options
	// Output is the explicit destination. Empty means derive it.
	Output string
}

// Stage is a step of a Process run.
type Stage int

const (
	StageStart Stage = iota
	StageClassify
	StageExtract
	StageResolveOutput
	StageWrite
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageClassify:
		return "classify"
	case StageExtract:
		return "extract"
	case StageResolveOutput:
		return "resolve output"
	case StageWrite:
		return "write"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Outcome is the terminal state of a run. On failure Stage is the step
// that failed and Err carries the tagged error.
type Outcome struct {
	Input    string
	Output   string
	Kind     locator.Kind
	Stage    Stage
	Err      error
	Duration time.Duration
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.Stage == StageDone
}

// FailureKind is errs.Unknown for successful outcomes.
func (o Outcome) FailureKind() errs.Kind {
	return errs.KindOf(o.Err)
}

// Message is the one-line summary shown to the user.
func (o Outcome) Message() string {
	if o.Succeeded() {
		return fmt.Sprintf("Successfully processed %s and saved to %s", displayName(o.Input), filepath.Base(o.Output))
	}
	return fmt.Sprintf("%s: %v", o.FailureKind(), o.Err)
}

func displayName(loc string) string {
	if locator.IsURL(loc) {
		return loc
	}
	return filepath.Base(loc)
}
