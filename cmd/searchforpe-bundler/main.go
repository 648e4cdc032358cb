package main

import "github.com/ff66ccff/SearchForPE/cmd/searchforpe-bundler/cmd"

func main() {
	cmd.Execute()
}
