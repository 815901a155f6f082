package main

import (
	"github.com/jjtimmons/primername/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
