package main

import "github.com/narwhalmedia/tracker/internal/cli"

func main() {
	cli.Execute()
}
