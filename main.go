package main

import "sharedprint/cmd"

func main() {
	cmd.Execute()
}
