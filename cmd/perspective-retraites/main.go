package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iwvelando/perspective-retraites/internal/cli"
	"github.com/joho/godotenv"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	if err := cli.Execute(context.Background(), version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
