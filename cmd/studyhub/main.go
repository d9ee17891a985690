package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/studyhub/studyhub/studyservice"
)

func main() {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	if err := studyservice.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "studyhub: %v\n", err)
		os.Exit(1)
	}
}
