package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is where the course backend listens out of the box.
const DefaultAPIURL = "http://localhost:5678/api"

type Config struct {
	// APIURL is the backend root, e.g. "http://localhost:5678/api".
	APIURL string

	// DebugLogPath enables TUI debug logging when non-empty.
	DebugLogPath string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		APIURL:       getenvDefault("ATELIER_API_URL", DefaultAPIURL),
		DebugLogPath: strings.TrimSpace(os.Getenv("ATELIER_TUI_DEBUG_LOG")),
	}
}

// Dir resolves the per-user config directory holding the session file, the
// event journal and the offline cache.
func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.atelier).
	if v := strings.TrimSpace(os.Getenv("ATELIER_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".atelier"), nil
}

func getenvDefault(k, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return fallback
}
