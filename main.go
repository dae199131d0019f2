package main

import "github.com/arcanaland/cardschema/cmd"

func main() {
	cmd.Main()
}
