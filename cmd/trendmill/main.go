// Package main is the entry point for the trendmill CLI.
package main

import (
	"github.com/trendmill/trendmill/internal/cli"
)

func main() {
	cli.Execute()
}
