// Package config loads llm-catalog settings from the environment and an
// optional .env file.
package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultTimeout = 10 * time.Second
	defaultNode    = "node"
)

// CatalogEnv holds the llm-catalog environment variables.
type CatalogEnv struct {
	// CLIPath is the tool that prints the catalog (LLM_CATALOG_CLI)
	CLIPath string

	// Timeout bounds one fetch (LLM_CATALOG_TIMEOUT, duration or milliseconds)
	Timeout time.Duration

	// NodePath runs .js tools (LLM_CATALOG_NODE)
	NodePath string

	// FallbackPath is a YAML catalog used when the tool fails (LLM_CATALOG_FALLBACK)
	FallbackPath string

	// ComSpec is the Windows command interpreter (ComSpec)
	ComSpec string
}

var (
	env     *CatalogEnv
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// A .env file in the working directory is loaded first; real environment
// variables win over it.
func Env() *CatalogEnv {
	envOnce.Do(func() {
		_ = godotenv.Load()
		env = &CatalogEnv{
			CLIPath:      os.Getenv("LLM_CATALOG_CLI"),
			Timeout:      parseTimeout(os.Getenv("LLM_CATALOG_TIMEOUT"), defaultTimeout),
			NodePath:     getEnvDefault("LLM_CATALOG_NODE", defaultNode),
			FallbackPath: os.Getenv("LLM_CATALOG_FALLBACK"),
			ComSpec:      os.Getenv("ComSpec"),
		}
	})
	return env
}

// ResetEnv resets the cached environment (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	env = nil
}

// LoadFile merges variables from a dotenv file into the process environment
// without overriding ones already set, then drops the cached Env.
func LoadFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return err
	}
	ResetEnv()
	return nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseTimeout accepts "1500ms"/"2s" style durations or a bare millisecond
// count. Empty, invalid and non-positive values yield fallback.
func parseTimeout(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(v); err == nil {
		if ms <= 0 {
			return fallback
		}
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
