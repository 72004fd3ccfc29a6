package main

import "github.com/leonmuri/progol-backend/cmd/progol-cli/cmd"

func main() {
	cmd.Execute()
}
