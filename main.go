package main

import (
	"os"

	"github.com/amigovet/amigovet-server/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
