package main

import "github.com/Mialde/Micheldekker/internal/cli"

func main() {
	cli.Execute()
}
