package main

import (
	"os"

	"github.com/AhmetShbz/wordrush/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
