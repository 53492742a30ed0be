package main

import (
	"os"

	"github.com/slatekore/slatekore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
