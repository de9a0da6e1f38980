package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/me/heptuple/internal/cli"
)

func main() {
	// Local .env files override nothing already in the environment.
	for _, file := range []string{".env", ".env.local"} {
		_ = godotenv.Load(file)
	}

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
