package main

import "github.com/nextlevelbuilder/scrybot/cmd"

func main() {
	cmd.Execute()
}
