package main

import (
	"os"

	"github.com/msto63/lingua/cmd/lingua/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
