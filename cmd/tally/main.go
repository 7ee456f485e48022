package main

import (
	"github.com/boredgamers/tally/internal/cli"
)

func main() {
	cli.Execute()
}
