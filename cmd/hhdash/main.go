package main

import "homehealth-dashboard/cmd/hhdash/commands"

func main() {
	commands.Execute()
}
