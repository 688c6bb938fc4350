package main

import (
	"fmt"
	"os"

	"github.com/PolyhedraZK/BloqCostCollection/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
