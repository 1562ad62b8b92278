// Package main is the entry point for the gkestack CLI.
//
// gkestack is the companion tool for the gkestack Pulumi components. It
// creates and checks the deployment manifest a stack program consumes:
// the interactive wizard writes gkestack.yaml, validate resolves it
// against the platform policy without touching any cloud API, and
// inspect shows everything a deployment would derive from it.
//
// Commands: init, validate, inspect, version.
//
// For detailed usage information, run:
//
//	gkestack --help
package main

import (
	"fmt"
	"os"

	"github.com/cloudbloc/gkestack/cmd/gkestack/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
