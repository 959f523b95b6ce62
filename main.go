package main

import "github.com/frahmantamala/idea-box/cmd"

func main() {
	cmd.Execute()
}
