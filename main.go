package main

import (
	"github.com/lilianyc/debruijn-assembly/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
