package main

import (
	"os"

	"github.com/shouni/memory-poster-kit/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
