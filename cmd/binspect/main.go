package main

import "github.com/binstreamio/binstream/internal/cli"

func main() {
	cli.Execute()
}
