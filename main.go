package main

import (
	"os"

	"github.com/thenoetrevino/turmas/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
