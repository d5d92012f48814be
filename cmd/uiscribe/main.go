package main

import "github.com/devicelab-dev/uiscribe/pkg/cli"

func main() {
	cli.Execute()
}
