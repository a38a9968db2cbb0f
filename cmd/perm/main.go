package main

import (
	"os"

	"github.com/buckeye43210/pyPERM/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
