package main

import "github.com/suhlee/facilitysim/cmd"

func main() {
	cmd.Execute()
}
