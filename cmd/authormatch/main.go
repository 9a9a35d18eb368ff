// Package main provides the entry point for the authormatch CLI tool.
package main

import (
	"github.com/agentstation/authormatch/cmd/authormatch/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
