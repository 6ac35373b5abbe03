package main

import "github.com/AlexSSD7/gpttoolbox/cmd"

func main() {
	cmd.Execute()
}
