// Package main is the entry point for the rsearch CLI.
package main

import "rsearch.dev/pkg/rsearch/cmd"

func main() {
	cmd.Execute()
}
