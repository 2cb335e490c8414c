package main

import (
	"restaurant/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("restaurant: %v", err)
	}
}
