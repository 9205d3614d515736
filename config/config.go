package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime parameter of the gateway.
type Config struct {
	ListenPort     int
	APIBaseURL     string
	SocketURL      string
	APITimeout     time.Duration
	DebounceWindow time.Duration
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present (local development convenience).
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiBase := os.Getenv("API_BASE_URL")
	if apiBase == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is not set")
	}

	socketURL := os.Getenv("SOCKET_URL")
	if socketURL == "" {
		// Most deployments expose the socket endpoint next to the REST API.
		socketURL = apiBase
	}

	portStr := os.Getenv("LISTEN_PORT")
	if portStr == "" {
		portStr = "3000"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LISTEN_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("LISTEN_PORT must be between 1 and 65535, got %d", port)
	}

	timeout := 15 * time.Second
	if timeoutStr := os.Getenv("API_TIMEOUT_SECONDS"); timeoutStr != "" {
		secs, err := strconv.Atoi(timeoutStr)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid API_TIMEOUT_SECONDS environment variable: %q", timeoutStr)
		}
		timeout = time.Duration(secs) * time.Second
	}

	debounce := 300 * time.Millisecond
	if debounceStr := os.Getenv("REFETCH_DEBOUNCE_MS"); debounceStr != "" {
		ms, err := strconv.Atoi(debounceStr)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid REFETCH_DEBOUNCE_MS environment variable: %q", debounceStr)
		}
		debounce = time.Duration(ms) * time.Millisecond
	}

	cfg := &Config{
		ListenPort:     port,
		APIBaseURL:     apiBase,
		SocketURL:      socketURL,
		APITimeout:     timeout,
		DebounceWindow: debounce,
	}

	return cfg, nil
}
