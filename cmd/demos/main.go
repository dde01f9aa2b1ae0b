// Command demos lists and runs every array exercise from one binary.
package main

import (
	"os"

	"go-arrays/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
