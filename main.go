package main

import "github.com/diewo77/go-mercuriale/cmd"

func main() {
	cmd.Execute()
}
