package main

import "inventory-tracker/cmd"

func main() {
	cmd.Execute()
}
