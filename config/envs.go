package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	RedisHost        string // Hostname or IP address for the Redis server
	RedisPort        int    // Port number for the Redis server
	RedisPassword    string // Password for the Redis server, empty when none
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret        string // Secret key for JWT signing
	JWTIssuer        string // Issuer claim for JWTs
	MaxCubeSize      int    // Largest cube edge a client may request
	DefaultCubeSize  int    // Cube edge used when a request does not name one
	MazeCacheTTL     int    // Seconds a generated maze stays in the cache
	RecentMazesLimit int    // Number of maze IDs kept in the recent index
}

// Envs holds the application's configuration once Load has run.
var Envs Config

// Load reads the application configuration into Envs and returns it.
// It loads environment variables from a .env file when one is present.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg, err := parse(os.LookupEnv)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	Envs = cfg
	return cfg
}

// parse builds a Config from the given lookup function.
func parse(lookup func(string) (string, bool)) (Config, error) {
	e := &envReader{lookup: lookup}
	cfg := Config{
		HostIP:           e.mustGet("HOST_IP"),
		RESTPort:         e.mustGetInt("REST_PORT"),
		DBHost:           e.mustGet("DB_HOST"),
		DBPort:           e.mustGetInt("DB_PORT"),
		DBUser:           e.mustGet("DB_USER"),
		DBPassword:       e.mustGet("DB_PASS"),
		DBName:           e.mustGet("DB_NAME"),
		RedisHost:        e.mustGet("REDIS_HOST"),
		RedisPort:        e.mustGetInt("REDIS_PORT"),
		RedisPassword:    e.getWithDefault("REDIS_PASS", ""),
		GinMode:          e.getWithDefault("GIN_MODE", "release"),
		JWTSecret:        e.mustGet("JWT_SECRET"),
		JWTIssuer:        e.mustGet("JWT_ISSUER"),
		MaxCubeSize:      e.getIntWithDefault("MAX_CUBE_SIZE", 32),
		DefaultCubeSize:  e.getIntWithDefault("DEFAULT_CUBE_SIZE", 4),
		MazeCacheTTL:     e.getIntWithDefault("MAZE_CACHE_TTL", 600),
		RecentMazesLimit: e.getIntWithDefault("RECENT_MAZES_LIMIT", 20),
	}
	if e.err != nil {
		return Config{}, e.err
	}

	if cfg.MaxCubeSize <= 0 {
		return Config{}, fmt.Errorf("MAX_CUBE_SIZE must be positive, got %d", cfg.MaxCubeSize)
	}
	if cfg.DefaultCubeSize <= 0 || cfg.DefaultCubeSize > cfg.MaxCubeSize {
		return Config{}, fmt.Errorf("DEFAULT_CUBE_SIZE must be in [1, %d], got %d", cfg.MaxCubeSize, cfg.DefaultCubeSize)
	}
	return cfg, nil
}

// envReader reads variables and keeps the first error it runs into.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

// mustGet retrieves the value of a variable, recording an error if it is not set.
func (e *envReader) mustGet(key string) string {
	value, exists := e.lookup(key)
	if !exists && e.err == nil {
		e.err = fmt.Errorf("environment variable %s is not set", key)
	}
	return value
}

// mustGetInt retrieves a variable as an integer, recording an error if it is not set or cannot be parsed.
func (e *envReader) mustGetInt(key string) int {
	valueStr := e.mustGet(key)
	if e.err != nil {
		return 0
	}
	return e.atoi(key, valueStr)
}

// getWithDefault retrieves the value of a variable or returns a default value if not set.
func (e *envReader) getWithDefault(key, defaultValue string) string {
	if value, exists := e.lookup(key); exists {
		return value
	}
	return defaultValue
}

// getIntWithDefault retrieves a variable as an integer or returns a default value if not set.
func (e *envReader) getIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := e.lookup(key)
	if !exists {
		return defaultValue
	}
	return e.atoi(key, valueStr)
}

func (e *envReader) atoi(key, valueStr string) int {
	value, err := strconv.Atoi(valueStr)
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value
}
