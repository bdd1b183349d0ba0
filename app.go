package main

import "github.com/masmgr/aicommit-go/cmd"

func main() {
	cmd.Run()
}
