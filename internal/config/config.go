package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Conversion ConversionConfig `yaml:"conversion"`
	Watch      WatchConfig      `yaml:"watch"`
	Gemini     GeminiConfig     `yaml:"gemini"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConversionConfig drives the document conversion service.
type ConversionConfig struct {
	// Readability keeps only the main article of HTML pages.
	Readability   bool          `yaml:"readability"`
	OCRLanguages  []string      `yaml:"ocr_languages"`
	OCRDPI        float64       `yaml:"ocr_dpi"`
	SofficeBinary string        `yaml:"soffice_binary"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	UserAgent     string        `yaml:"user_agent"`
	// MaxFetchBytes caps the size of a downloaded URL body.
	MaxFetchBytes int64 `yaml:"max_fetch_bytes"`
}

type WatchConfig struct {
	Input         string `yaml:"input"`
	MaxConcurrent int    `yaml:"max_concurrent"`
	OCR           bool   `yaml:"ocr"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format)
	}

	if len(c.Conversion.OCRLanguages) == 0 {
		c.Conversion.OCRLanguages = []string{"eng"}
	}
	if c.Conversion.OCRDPI == 0 {
		c.Conversion.OCRDPI = 300
	}
	if c.Conversion.OCRDPI < 0 {
		return fmt.Errorf("conversion.ocr_dpi must be positive")
	}
	if c.Conversion.SofficeBinary == "" {
		c.Conversion.SofficeBinary = "soffice"
	}
	if c.Conversion.HTTPTimeout < 0 {
		return fmt.Errorf("conversion.http_timeout must not be negative")
	}
	if c.Conversion.UserAgent == "" {
		c.Conversion.UserAgent = "caption-text/1.0"
	}
	if c.Conversion.MaxFetchBytes == 0 {
		c.Conversion.MaxFetchBytes = 64 << 20
	}
	if c.Conversion.MaxFetchBytes < 0 {
		return fmt.Errorf("conversion.max_fetch_bytes must be positive")
	}

	if c.Watch.Input == "" {
		c.Watch.Input = "data/input"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Watch.MaxConcurrent < 0 {
		return fmt.Errorf("watch.max_concurrent must be positive")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
