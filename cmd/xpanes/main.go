package main

import (
	"os"

	"github.com/markstos/tmux-xpanes/cli"
)

func main() {
	os.Exit(cli.Execute())
}
