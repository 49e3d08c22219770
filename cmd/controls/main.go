// Command controls renders previews of the page indicator and floating
// label field and prints resolved themes.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/uicontrols/cmd/controls/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
