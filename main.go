package main

import "github.com/hecksadecimal/piano-go/cmd"

func main() {
	cmd.Execute()
}
