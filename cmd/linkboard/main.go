package main

import "github.com/mcoot/linkboard/internal/cli"

func main() {
	cli.Execute()
}
