package main

import (
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/kiosk404/stockmind/internal/inventoryd"
)

func main() {
	_ = godotenv.Load()

	inventoryd.NewApp("inventoryd").Run()
}
