package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shotsweep/shotsweep/internal/cli"
)

const appName = "shotsweep"

// These variables are set in build step
var (
	Version   = "unset"
	Revision  = "unset"
	BuildDate = "unset"
)

func main() {
	if err := runMain(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString(appName), err)
		os.Exit(1)
	}
}

func runMain() error {
	return cli.Run(cli.Version{
		AppName:   appName,
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
	})
}
