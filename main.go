package main

import "github.com/viviai0214/fanfare/cmd"

func main() {
	cmd.Execute()
}
