// Package main provides uuidv1, an interactive converter between version 1
// UUIDs and timestamps.
package main

import (
	"os"

	"github.com/patrikavaz/uuidv1/internal/cli"
)

func main() {
	p := cli.NewTerminalPrompter()
	code := cli.Run(p, os.Stdout, os.Stderr, os.Args)
	_ = p.Close()

	os.Exit(code)
}
