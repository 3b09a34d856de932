package main

import "resepnusantara/cmd/client/cmd"

func main() {
	cmd.Execute()
}
