package main

import (
	"github.com/joho/godotenv"
	"github.com/mazikuben/construction-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional outside local development
	godotenv.Load()
}
