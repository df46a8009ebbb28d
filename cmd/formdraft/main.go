package main

import "github.com/aalvaropc/formdraft/internal/cli"

func main() {
	cli.Execute()
}
