package main

import "mommy/cmd"

func main() {
	cmd.Execute()
}
