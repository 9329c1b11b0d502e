package main

import (
	"github.com/shelldrill/shelldrill/cmd"
)

func main() {
	cmd.Execute()
}
