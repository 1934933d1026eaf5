package main

import (
	"os"

	"github.com/kbolino/fracalc/cmd/fracalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
