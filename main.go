package main

import "github.com/jdev-tools/jdex/cmd"

func main() {
	cmd.Execute()
}
