package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/internal/processor"
	"github.com/nguyentantai21042004/caption-text/internal/watcher"
)

var (
	watchInput string
	watchOCR   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Extract text from every supported file dropped into a directory",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "directory to watch (default from config)")
	watchCmd.Flags().BoolVar(&watchOCR, "ocr", false, "recognise text in scanned PDFs and images")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if watchInput != "" {
		cfg.Watch.Input = watchInput
	}
	if cmd.Flags().Changed("ocr") {
		cfg.Watch.OCR = watchOCR
	}

	log := newLogger(cfg)
	defer logger.Sync(log)

	ctx, cancel := signalContext()
	defer cancel()

	if err := os.MkdirAll(cfg.Watch.Input, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", cfg.Watch.Input, err)
	}

	proc := newProcessor(cfg, log)
	opts := processor.Options{OCREnabled: cfg.Watch.OCR}

	handler := func(ctx context.Context, path string) error {
		out := proc.Process(ctx, processor.Request{Locator: path, Options: opts})
		printOutcome(cmd, out)
		return out.Err
	}

	w, err := watcher.New(cfg.Watch.Input, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s (ocr: %t). Press Ctrl+C to stop", cfg.Watch.Input, cfg.Watch.OCR)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}

	log.Info(ctx, "Watcher stopped")
	return nil
}
