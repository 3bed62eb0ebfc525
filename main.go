package main

import "rentbook_backend/internals/commands"

func main() {
	commands.Execute()
}
