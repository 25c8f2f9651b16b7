package main

import "ui-server/cmd"

func main() {
	cmd.Execute()
}
