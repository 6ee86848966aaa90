package main

import (
	"os"

	"github.com/mahdifarro/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
