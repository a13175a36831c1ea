package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/durp-dev/durp/internal/cli"
	"github.com/durp-dev/durp/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DURP",
		Section: "1",
		Source:  "durp " + version.Version,
		Manual:  "durp manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
