package main

import (
	"os"

	"github.com/Worcrow/wyag/cmd"
)

func main() {
	os.Exit(cmd.RunCmdline(os.Args))
}
