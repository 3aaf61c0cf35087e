package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kiosk404/stockmind/internal/stockctl"
)

func main() {
	_ = godotenv.Load()

	command := stockctl.NewDefaultStockCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
