package main

import "github.com/mytheresa/go-inventory/cmd/inventory/commands"

func main() {
	commands.Execute()
}
