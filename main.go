package main

import (
	"os"

	"github.com/the-turing-way/pull-files/cmd"
)

func main() {
	if err := cmd.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
