package main

import "github.com/wheelhouse-cli/wheelhouse/cmd"

func main() {
	cmd.Execute()
}
