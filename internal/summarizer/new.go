package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/caption-text/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	generate   func(ctx context.Context, transcript string) (string, error)
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	s := &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
	s.generate = s.callGemini
	return s
}
