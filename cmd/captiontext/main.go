package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/caption-text/cmd/captiontext/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
