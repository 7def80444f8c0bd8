package main

import (
	"os"

	"github.com/jorundf/cetus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
