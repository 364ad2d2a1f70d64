package main

import "github.com/inovacc/dexr/cmd"

func main() {
	cmd.Execute()
}
