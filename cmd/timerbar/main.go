package main

import (
	"os"

	"github.com/anivanovic/timerbar/pkg/cmd"
)

func main() {
	if err := cmd.NewApp().Execute(); err != nil {
		os.Exit(1)
	}
}
