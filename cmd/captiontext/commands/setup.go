package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-text/internal/caption"
	"github.com/nguyentantai21042004/caption-text/internal/config"
	"github.com/nguyentantai21042004/caption-text/internal/document"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/internal/processor"
	"github.com/nguyentantai21042004/caption-text/pkg/executor"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed, color.Bold)
)

// loadConfig reads --config. The default path may be absent; an explicit
// one must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOrDefault(cfgFile)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
}

func newProcessor(cfg *config.Config, log logger.Logger) processor.Processor {
	exec := executor.New()
	extractor := document.New(cfg.Conversion, exec, log)
	return processor.New(caption.NewVTTParser(), extractor, log)
}

// signalContext is cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func printOutcome(cmd *cobra.Command, out processor.Outcome) {
	if out.Succeeded() {
		successColor.Fprintln(cmd.OutOrStdout(), out.Message())
		return
	}
	failureColor.Fprintf(cmd.ErrOrStderr(), "Error processing %s: %s\n", out.Input, out.Message())
}
