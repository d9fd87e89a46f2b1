package main

import "agroportal/cmd/client/cmd"

func main() {
	cmd.Execute()
}
