package main

import (
	"os"

	"github.com/dshills/subtext/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
