// Package main provides the mysqlparse command.
package main

import (
	"os"

	"github.com/leapstack-labs/mysqlparse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
