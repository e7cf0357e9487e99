package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"httpmsg/internal/version"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const defaultLogMaxSize = 10

type config struct {
	logLevel   string
	logFile    string
	logMaxSize int

	userAgent string

	requestIDHeader  string
	requestIDEnabled bool

	noColor bool
}

func parse() (*config, error) {
	requestIDHeader, err := parseRequestIDHeader()
	if err != nil {
		return nil, err
	}

	return &config{
		logLevel:         getenv("LOG_LEVEL", "info"),
		logFile:          getenv("LOG_FILE", ""),
		logMaxSize:       parseLogMaxSize(),
		userAgent:        getenv("USER_AGENT", version.UserAgent()),
		requestIDHeader:  requestIDHeader,
		requestIDEnabled: getenvBool("REQUEST_ID_ENABLED", true),
		noColor:          getenvBool("NO_COLOR", false),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

// parseRequestIDHeader falls back to X-Request-Id only when the variable is
// unset; a set but empty value is rejected.
func parseRequestIDHeader() (string, error) {
	raw, ok := os.LookupEnv("REQUEST_ID_HEADER")
	if !ok {
		return "X-Request-Id", nil
	}
	if raw == "" {
		return "", fmt.Errorf("REQUEST_ID_HEADER must not be empty")
	}
	if strings.ContainsAny(raw, ": \t\r\n") {
		return "", fmt.Errorf("invalid REQUEST_ID_HEADER value")
	}
	return raw, nil
}

func parseLogMaxSize() int {
	raw := getenv("LOG_MAX_SIZE", strconv.Itoa(defaultLogMaxSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 || size > 1024 {
		log.Warn().Str("value", raw).Msg("invalid LOG_MAX_SIZE, falling back to 10")
		return defaultLogMaxSize
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
