package main

import "github.com/saleslens-dev/saleslens/internal/cli"

func main() {
	cli.Execute()
}
