package main

import (
	"os"

	"github.com/emicalc/loan-calculator/cmd/emicalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
