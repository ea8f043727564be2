package main

import (
	"context"
	"io"
)

// Dependencies holds the configuration shared by command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch FetchCmd `cmd:"" help:"Fetch a URL and print the parsed document"`
	Probe ProbeCmd `cmd:"" help:"Classify a URL as static or dynamic"`
}
