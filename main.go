package main

import "github.com/theirongolddev/duofin/cmd"

func main() {
	cmd.Execute()
}
