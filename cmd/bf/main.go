package main

import (
	"github.com/blackfynn/blackfynn-go/cmd/bf/cmd"
)

func main() {
	cmd.Execute()
}
