// Command veboost runs the interactive boost calculator.
package main

import (
	"os"

	"github.com/Iron-Ham/veboost/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
