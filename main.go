package main

import "github.com/mouse-blink/almanac/cmd"

func main() {
	cmd.Execute()
}
