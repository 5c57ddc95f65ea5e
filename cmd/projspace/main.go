package main

import (
	"os"

	"github.com/ampkit/projspace/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
