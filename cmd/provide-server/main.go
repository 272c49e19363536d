package main

import (
	"fmt"
	"os"

	"github.com/lyraproj/provide/server"
)

func main() {
	cmd := server.NewCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
