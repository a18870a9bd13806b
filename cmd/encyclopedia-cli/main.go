package main

import "encyclopedia/cmd/encyclopedia-cli/cmd"

func main() {
	cmd.Execute()
}
