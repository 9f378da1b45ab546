package main

import (
	"os"

	"tableflip.dev/wutils/pkg/commands"
)

func main() {
	os.Exit(commands.Execute(commands.NewCal()))
}
