package main

import "github.com/ib-77/ropkit/internal/cli"

func main() {
	cli.Execute()
}
