package main

import "github.com/jonswain/sudsolve/cmd"

func main() {
	cmd.Execute()
}
