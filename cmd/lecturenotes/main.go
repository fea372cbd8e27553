package main

import (
	"os"

	"github.com/nguyentantai21042004/lecture-notes/internal/cli"
	"github.com/nguyentantai21042004/lecture-notes/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	deps := &cli.Dependencies{}
	return cli.NewRootCmd(deps).Execute()
}
