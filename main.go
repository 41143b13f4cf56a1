package main

import "github.com/they4kman/minemind/cmd"

func main() {
	cmd.Execute()
}
