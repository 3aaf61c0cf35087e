package main

import (
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/kiosk404/stockmind/internal/stockmind"
)

func main() {
	_ = godotenv.Load()

	stockmind.NewApp("stockmind").Run()
}
