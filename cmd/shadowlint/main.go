package main

import (
	"os"
	"runtime"

	"github.com/shadowsec/shadowlint/cmd/shadowlint/cli"
	"github.com/shadowsec/shadowlint/internal"
)

var (
	version        = internal.NotProvided
	gitCommit      = internal.NotProvided
	buildDate      = internal.NotProvided
	gitDescription = internal.NotProvided
)

func main() {
	internal.SetBuildInfo(version, gitCommit, buildDate, gitDescription, runtime.Version())

	app := cli.Application()

	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
