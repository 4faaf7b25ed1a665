package processor

import "context"

// Processor runs one extraction: classify, extract, resolve output, write.
type Processor interface {
	Process(ctx context.Context, req Request) Outcome
}
