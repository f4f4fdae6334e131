package main

import "github.com/tetreum/tviso/cmd"

func main() {
	cmd.Execute()
}
