package main

import "martianoff/sumtypes/cmd/adt/commands"

func main() {
	commands.Execute()
}
