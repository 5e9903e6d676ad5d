package main

import (
	"os"

	"github.com/SWiseG/QuizLoop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
