package main

import (
	"github.com/zmohammed5/fpga-image-processor/cmd/fpgabench/commands"
)

func main() {
	commands.Execute()
}
