package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/caption-text/internal/caption"
	"github.com/nguyentantai21042004/caption-text/internal/errs"
	"github.com/nguyentantai21042004/caption-text/internal/locator"
	"github.com/nguyentantai21042004/caption-text/internal/output"
)

// Process runs the request to completion. The first failing step ends the
// run; nothing is written unless every step before Write succeeded.
func (p *implProcessor) Process(ctx context.Context, req Request) Outcome {
	startTime := time.Now()
	out := Outcome{Input: req.Locator, Stage: StageStart}

	fail := func(stage Stage, err error) Outcome {
		out.Stage = stage
		out.Err = err
		out.Duration = time.Since(startTime)
		p.logger.Error(ctx, "Failed to %s %s [%s]: %v", stage, req.Locator, errs.KindOf(err), err)
		return out
	}

	p.logger.Info(ctx, "Processing %s (ocr: %t)", req.Locator, req.Options.OCREnabled)

	// Step 1: Classify
	kind, err := locator.Classify(req.Locator)
	if err != nil {
		return fail(StageClassify, err)
	}
	out.Kind = kind

	// Step 2: Extract
	text, err := p.extract(ctx, kind, req)
	if err != nil {
		return fail(StageExtract, err)
	}
	p.logger.Debug(ctx, "Extracted %d bytes from %s", len(text), req.Locator)

	// Step 3: Resolve output
	target, err := output.Resolve(req.Locator, req.Output)
	if err != nil {
		return fail(StageResolveOutput, err)
	}
	out.Output = target

	// Step 4: Write
	if err := output.Write(target, text); err != nil {
		return fail(StageWrite, err)
	}

	out.Stage = StageDone
	out.Duration = time.Since(startTime)
	p.logger.Info(ctx, "%s (%s)", out.Message(), out.Duration)
	return out
}

func (p *implProcessor) extract(ctx context.Context, kind locator.Kind, req Request) (string, error) {
	switch kind {
	case locator.KindSRT:
		return caption.StripFile(req.Locator)
	case locator.KindVTT:
		return caption.ParseVTTFile(ctx, p.parser, req.Locator)
	case locator.KindDocument, locator.KindURL:
		return p.extractor.Extract(ctx, req.Locator, req.Options.OCREnabled)
	default:
		return "", errs.Newf(errs.UnsupportedFormat, "extract", "no extractor for %s", kind)
	}
}
