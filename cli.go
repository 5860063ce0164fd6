//go:build cli
// +build cli

package main

import (
	_ "ethnicshop.GO/custom"

	"ethnicshop.GO/cmd"
	"ethnicshop.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
