package main

import (
	"os"

	"github.com/G-Research/aliasedqueue/cmd/aliasedqueuectl/cmd"
	"github.com/G-Research/aliasedqueue/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
