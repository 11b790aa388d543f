package main

import "github.com/finanapp/client-go/cmd/finanapp/cmd"

func main() {
	cmd.Execute()
}
