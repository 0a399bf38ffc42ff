package main

import "github.com/notargets/riemann1d/cmd"

func main() {
	cmd.Execute()
}
