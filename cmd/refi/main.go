package main

import (
	"os"

	"github.com/rpgo/refi-calculator/cmd/refi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
