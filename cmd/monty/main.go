package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/statsim/monty/cmd/monty/commands"
)

func main() {
	// Optional .env carrying MONTY_* defaults (iterations, workers).
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatal("Error loading .env file: ", err)
		}
	}
	commands.Execute()
}
