package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by VOICE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("VOICE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be set.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func RetellAPIKey() string {
	return os.Getenv("RETELL_API_KEY")
}

func VapiAPIKey() string {
	return os.Getenv("VAPI_API_KEY")
}

// RetellBaseURL overrides the Retell API host. Empty means the default.
func RetellBaseURL() string {
	return os.Getenv("RETELL_BASE_URL")
}

// VapiBaseURL overrides the Vapi API host. Empty means the default.
func VapiBaseURL() string {
	return os.Getenv("VAPI_BASE_URL")
}

// GatewayToken is the bearer token required on /v1 routes.
// Empty disables gateway auth.
func GatewayToken() string {
	return os.Getenv("GATEWAY_TOKEN")
}

// ProvidersFile is the path of an optional YAML providers list.
// When empty the server registers every vendor with an API key set.
func ProvidersFile() string {
	return os.Getenv("PROVIDERS_FILE")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
