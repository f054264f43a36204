package main

import "github.com/deploymenttheory/go-cargoship/cmd"

func main() {
	cmd.Execute()
}
