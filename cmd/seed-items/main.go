package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/stockroom/internal/seed"
	"github.com/okian/stockroom/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 2 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verify  = flag.Bool("verify", true, "Verify the category=tools filter after seeding")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seed.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		Verify:  *verify,
	}

	if _, err := seed.Run(ctx, config); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
