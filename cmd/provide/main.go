package main

import (
	"fmt"
	"os"

	"github.com/lyraproj/provide/cli"
)

func main() {
	cmd := cli.NewCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
