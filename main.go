package main

import "edgedata/cmd"

func main() {
	cmd.Execute()
}
