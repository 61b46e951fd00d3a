package main

import (
	"os"

	"github.com/robfig/soyc/cmd/soyc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
