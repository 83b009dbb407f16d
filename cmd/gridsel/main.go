// Command gridsel replays a selection gesture script against a grid and
// prints the result or exports it as a workbook.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
