package main

import "github.com/ff66ccff/SearchForPE/cmd/searchforpe-bankgen/cmd"

func main() {
	cmd.Execute()
}
