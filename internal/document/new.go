package document

import (
	"net/http"

	"github.com/nguyentantai21042004/caption-text/internal/config"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/pkg/executor"
)

// defaultMaxFetchBytes bounds URL downloads when no limit is configured.
const defaultMaxFetchBytes = 64 << 20

type implExtractor struct {
	converters    map[string]Converter
	client        *http.Client
	userAgent     string
	maxFetchBytes int64
	logger        logger.Logger
}

// New creates an Extractor wired to the default conversion backends.
func New(cfg config.ConversionConfig, exec executor.Executor, log logger.Logger) Extractor {
	ocr := newTesseract(cfg.OCRLanguages, cfg.OCRDPI)
	office := &docconvConverter{}
	sheet := &spreadsheetConverter{}
	image := &imageConverter{ocr: ocr}
	html := &htmlConverter{readability: cfg.Readability}

	converters := map[string]Converter{
		".pdf":   &pdfConverter{text: office, ocr: ocr},
		".png":   image,
		".jpg":   image,
		".jpeg":  image,
		".tiff":  image,
		".bmp":   image,
		".docx":  office,
		".pptx":  office,
		".xlsx":  sheet,
		".html":  html,
		".xhtml": html,
		".doc":   newLegacyConverter(exec, cfg.SofficeBinary, "docx", office),
		".ppt":   newLegacyConverter(exec, cfg.SofficeBinary, "pptx", office),
		".xls":   newLegacyConverter(exec, cfg.SofficeBinary, "xlsx", sheet),
	}

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	ext := NewWithConverters(converters, client, cfg.UserAgent, log).(*implExtractor)
	if cfg.MaxFetchBytes > 0 {
		ext.maxFetchBytes = cfg.MaxFetchBytes
	}
	return ext
}

// NewWithConverters creates an Extractor over an explicit extension to
// Converter table.
func NewWithConverters(converters map[string]Converter, client *http.Client, userAgent string, log logger.Logger) Extractor {
	if client == nil {
		client = http.DefaultClient
	}
	return &implExtractor{
		converters:    converters,
		client:        client,
		userAgent:     userAgent,
		maxFetchBytes: defaultMaxFetchBytes,
		logger:        log,
	}
}
