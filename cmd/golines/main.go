package main

import "github.com/philipparndt/golines/cmd"

func main() {
	cmd.Execute()
}
