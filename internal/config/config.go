package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	DEFAULT_PORT        int    = 3000
	DEFAULT_STATIC_ROOT string = "public"
)

// Config is a snapshot of the settings the server reads from the environment.
type Config struct {
	Port       int
	StaticRoot string
}

var portWarnOnce sync.Once

// Load reads the given .env files (or ./.env) into the process environment.
// Variables already set in the environment are not overridden. A missing
// file is not an error.
func Load(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Printf("config: no .env loaded (%v); using process environment", err)
	}
}

// FromEnv builds a Config from the current environment.
func FromEnv() Config {
	return Config{
		Port:       Port(),
		StaticRoot: StaticRoot(),
	}
}

// Port returns the listening port from PORT, or DEFAULT_PORT when it is
// unset, non-numeric or out of range.
func Port() int {
	raw := strings.TrimSpace(os.Getenv("PORT"))
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		portWarnOnce.Do(func() {
			if raw == "" {
				log.Printf("config: PORT not set; defaulting to %d", DEFAULT_PORT)
			} else {
				log.Printf("WARNING: PORT=%q is not a valid port; defaulting to %d", raw, DEFAULT_PORT)
			}
		})
		return DEFAULT_PORT
	}
	return port
}

// StaticRoot returns the directory non-API requests are resolved against.
func StaticRoot() string {
	if v := strings.TrimSpace(os.Getenv("STATIC_ROOT")); v != "" {
		return v
	}
	return DEFAULT_STATIC_ROOT
}

// Addr is the listen address for the port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
