package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/cyber-portfolio/cmd"
)

func main() {
	cmd.Execute()
}
