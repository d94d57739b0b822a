package main

import "github.com/ftl/ts2000adapter/cmd"

func main() {
	cmd.Execute()
}
