package main

import (
	"os"

	"github.com/rydwhelan/riskday/cmd/riskday/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
