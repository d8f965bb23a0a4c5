package main

import (
	"github.com/avilaHugo/rosalind/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
