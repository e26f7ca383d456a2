package main

import (
	"os"

	"kvbackup/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
