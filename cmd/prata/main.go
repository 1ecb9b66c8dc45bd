package main

import (
	"os"

	"github.com/idilsaglam/prata/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
