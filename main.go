package main

import (
	"os"

	"github.com/mathmate/mathmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
