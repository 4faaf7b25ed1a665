package processor

import (
	"github.com/nguyentantai21042004/caption-text/internal/caption"
	"github.com/nguyentantai21042004/caption-text/internal/document"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
)

type implProcessor struct {
	parser    caption.VTTParser
	extractor document.Extractor
	logger    logger.Logger
}

// New creates a new Processor instance
func New(parser caption.VTTParser, extractor document.Extractor, log logger.Logger) Processor {
	return &implProcessor{
		parser:    parser,
		extractor: extractor,
		logger:    log,
	}
}
