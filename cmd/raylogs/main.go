package main

import "github.com/augray/ray/internal/cli"

func main() {
	cli.Execute()
}
