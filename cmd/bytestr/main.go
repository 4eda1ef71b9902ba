package main

import (
	"os"

	"github.com/msto63/bytestr/cmd/bytestr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
