package main

import (
	"os"

	"github.com/tsawler/docstree/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
