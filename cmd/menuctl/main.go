package main

import "menuboard/cmd/menuctl/commands"

func main() {
	commands.Execute()
}
