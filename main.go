// Package main is the entry point for the nbametrics CLI tool, which fetches
// NBA player game logs and computes descriptive statistics over them.
package main

import "github.com/courtside/nbametrics/cmd"

func main() {
	cmd.Execute()
}
