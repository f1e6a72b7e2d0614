package main

import "github.com/theirongolddev/flynn/cmd"

func main() {
	cmd.Execute()
}
