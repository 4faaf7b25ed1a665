package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/internal/summarizer"
)

var summarizeDest string

var summarizeCmd = &cobra.Command{
	Use:   "summarize <dir>",
	Short: "Summarize extracted .txt transcripts with Gemini",
	Long: `Summarize every .txt file in <dir> with Gemini and write <name>.md and
<name>.docx. API keys come from gemini.api_keys or GEMINI_API_KEYS.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeDest, "dest", "d", "", "output directory (default: <dir>)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Gemini.APIKeys) == 0 {
		return fmt.Errorf("no Gemini API keys: set gemini.api_keys or GEMINI_API_KEYS")
	}

	log := newLogger(cfg)
	defer logger.Sync(log)

	ctx, cancel := signalContext()
	defer cancel()

	dest := summarizeDest
	if dest == "" {
		dest = args[0]
	}

	s := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if err := s.SummarizeAll(ctx, args[0], dest); err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	successColor.Fprintf(cmd.OutOrStdout(), "Summaries written to %s\n", dest)
	return nil
}
