package main

import "github.com/draftscout/draftscout/cmd"

func main() {
	cmd.Execute()
}
