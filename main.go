package main

import (
	"github.com/polaires/Protein-engineering-tools-sub000/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
