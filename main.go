package main

import "github.com/mouse-blink/dtm/cmd"

func main() {
	cmd.Execute()
}
