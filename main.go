package main

import "github.com/tilesched/tilesched/cmd"

func main() {
	cmd.Execute()
}
