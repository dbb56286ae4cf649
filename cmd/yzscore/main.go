package main

import "github.com/mcoot/yahtzee-scorekeeper/internal/cli"

func main() {
	cli.Execute()
}
