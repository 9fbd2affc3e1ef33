package main

import (
	"os"

	"github.com/veridia/identity/internal/cmd"
	"github.com/veridia/identity/internal/logging"
)

func main() {
	if err := cmd.Run(os.Args[1:]...); err != nil {
		logging.S.Error(err.Error())
		os.Exit(1)
	}
}
