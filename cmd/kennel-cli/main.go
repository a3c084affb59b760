package main

import "kennel/cmd/kennel-cli/cmd"

func main() {
	cmd.Execute()
}
