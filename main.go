package main

import (
	"os"

	"github.com/abhisek/mathsheet/cmd"
	"github.com/abhisek/mathsheet/internal/frontend"
)

func main() {
	if err := cmd.Execute(); err != nil {
		frontend.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
