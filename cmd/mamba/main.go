package main

import "github.com/battlesnakeio/mamba/cmd/mamba/commands"

func main() {
	commands.Execute()
}
