package main

import "github.com/kasuboski/moviez/cmd"

func main() {
	cmd.Execute()
}
