package main

import (
	"os"

	"github.com/studialabs/studia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
