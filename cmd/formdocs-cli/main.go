package main

import "github.com/nfrund/formdocs/cmd/formdocs-cli/cmd"

func main() {
	cmd.Execute()
}
