package main

import (
	"os"

	"github.com/rustyeddy/tycoon/cmd/tycoon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
