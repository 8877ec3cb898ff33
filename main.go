package main

import "splitkit/cmd"

func main() {
	cmd.Execute()
}
