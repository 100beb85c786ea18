package main

import "github.com/scrobloop/scrobloop/cmd"

func main() {
	cmd.Execute()
}
