package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/internal/processor"
)

var (
	extractOCR    bool
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract <file-or-url>...",
	Short: "Extract text from subtitle files, documents, images or URLs",
	Long: `Extract text from each input and write it next to the input as <name>.txt.
URLs have no sibling file, so --output is required for them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractOCR, "ocr", false, "recognise text in scanned PDFs and images")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (single input only)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single input")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer logger.Sync(log)

	ctx, cancel := signalContext()
	defer cancel()

	proc := newProcessor(cfg, log)
	opts := processor.Options{OCREnabled: extractOCR}

	failed := 0
	for _, loc := range args {
		out := proc.Process(ctx, processor.Request{
			Locator: loc,
			Options: opts,
			Output:  extractOutput,
		})
		printOutcome(cmd, out)
		if !out.Succeeded() {
			failed++
		}
	}

	if failed > 0 {
		return ErrReported
	}
	return nil
}
