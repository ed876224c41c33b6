package main

import "github.com/burrow-io/burrow-site/cmd"

func main() {
	cmd.Execute()
}
