package main

import "github.com/yasu691/fragmenta/cmd"

func main() {
	cmd.Execute()
}
