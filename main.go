package main

import "github.com/hbonath/sonicapi/cmd"

func main() {
	cmd.Execute()
}
