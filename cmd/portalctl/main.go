package main

import (
	"github.com/joho/godotenv"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd"
)

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
