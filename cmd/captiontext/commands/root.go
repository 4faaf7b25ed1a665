package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrReported is returned when failures were already printed to the user.
var ErrReported = errors.New("one or more inputs failed")

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "captiontext",
	Short: "Extract plain text from subtitles, documents, images and web pages",
	Long: `captiontext turns SRT/WebVTT subtitles, office documents, PDFs, images and
web pages into plain text files. Subtitle timing is stripped, documents are
converted to markdown-flavoured text and images can be read with OCR.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
