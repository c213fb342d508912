package main

import (
	"os"

	"github.com/charmingruby/seqkit/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
