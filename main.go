// Package main is the entry point for the twintrim CLI.
package main

import "github.com/aryanadla/twinTrim/cmd"

func main() {
	cmd.Execute()
}
