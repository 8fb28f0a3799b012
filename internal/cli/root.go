// Package cli は memory-poster コマンドのサブコマンド群を実装します。
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "memory-poster",
	Short: "Turn a city memory into an abstract poster",
	Long: `memory-poster generates a deterministic 1:1 abstract art poster from a
short free-text memory of a city. Analysis and rendering are fully local:
no network calls, no ML models, reproducible from a seed.`,
	SilenceUsage: true,
}

func exitErr(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
	os.Exit(1)
}
