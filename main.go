package main

import "github.com/klaybind/klaybind/cmd"

func main() {
	cmd.Execute()
}
