package main

import "github.com/structcalc/isbeam/cmd"

func main() {
	cmd.Execute()
}
