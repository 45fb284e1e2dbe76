package main

import (
	"os"

	"github.com/msto63/raql/cmd/raql/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
