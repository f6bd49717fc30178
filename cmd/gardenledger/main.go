package main

import (
	"os"

	"github.com/glenveagh/gardenledger/internal/cli"
	"github.com/glenveagh/gardenledger/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	return cli.Execute(version.GetVersion())
}
