package main

import "github.com/Scharxi/mini-shell/cmd"

func main() {
	cmd.Execute()
}
