package main

import (
	cmd "github.com/kerbaras/champions/cmd/champions"
)

func main() {
	cmd.Execute()
}
