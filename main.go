// Package main is the entry point for the CollabNEX CLI application.
package main

import (
	"collabnex/cli/cmd"
)

func main() {
	cmd.Execute()
}
