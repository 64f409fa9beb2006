package main

import (
	"os"

	"github.com/tyfind/tyfind/src/tyfind/cli"
)

func main() {
	os.Exit(cli.Execute())
}
