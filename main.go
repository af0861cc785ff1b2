package main

import "github.com/axe08/tmasearcher-api/cmd"

func main() {
	cmd.Execute()
}
