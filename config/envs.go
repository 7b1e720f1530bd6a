package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingEnv is returned when a required environment variable is unset.
var ErrMissingEnv = errors.New("environment variable is not set")

// Config holds the application's configuration values.
type Config struct {
	HostIP             string        // Host IP for the server
	RESTPort           int           // Port for the REST API
	GinMode            string        // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret          string        // Secret key for JWT signing
	JWTIssuer          string        // Issuer claim for JWTs
	SessionTokenTTL    time.Duration // Lifetime of a session token
	MaxSessions        int           // Upper bound on concurrently running games
	SessionIdleTimeout time.Duration // Sessions without input for this long are stopped
	RedisAddr          string        // Leaderboard Redis address, empty disables the leaderboard
	RedisPassword      string        // Password for Redis
	LeaderboardSize    int           // Entries kept per maze size
	DBHost             string        // Hostname or IP address for MongoDB, empty disables run history
	DBPort             int           // Port number for MongoDB
	DBUser             string        // Username for MongoDB
	DBPassword         string        // Password for MongoDB
	DBName             string        // Name of the database
	GameConfigPath     string        // Optional YAML file with game tuning
	EnvFileErr         error         // Why no .env file was loaded, nil when one was
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; failing to load it is not
// an error and is reported through EnvFileErr for the caller to log.
func Load() (Config, error) {
	var (
		c   Config
		err error
	)
	c.EnvFileErr = godotenv.Load()

	if c.HostIP, err = mustGetEnv("HOST_IP"); err != nil {
		return Config{}, err
	}
	if c.JWTSecret, err = mustGetEnv("JWT_SECRET"); err != nil {
		return Config{}, err
	}
	if c.RESTPort, err = getEnvAsInt("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if c.MaxSessions, err = getEnvAsInt("MAX_SESSIONS", 64); err != nil {
		return Config{}, err
	}
	if c.LeaderboardSize, err = getEnvAsInt("LEADERBOARD_SIZE", 100); err != nil {
		return Config{}, err
	}
	if c.DBPort, err = getEnvAsInt("DB_PORT", 27017); err != nil {
		return Config{}, err
	}
	if c.SessionTokenTTL, err = getEnvAsDuration("SESSION_TOKEN_TTL", 2*time.Hour); err != nil {
		return Config{}, err
	}
	if c.SessionIdleTimeout, err = getEnvAsDuration("SESSION_IDLE_TIMEOUT", 10*time.Minute); err != nil {
		return Config{}, err
	}

	c.GinMode = getEnvWithDefault("GIN_MODE", "release")
	c.JWTIssuer = getEnvWithDefault("JWT_ISSUER", "vinom-tilt")
	c.RedisAddr = getEnvWithDefault("REDIS_ADDR", "")
	c.RedisPassword = getEnvWithDefault("REDIS_PASSWORD", "")
	c.DBHost = getEnvWithDefault("DB_HOST", "")
	c.DBUser = getEnvWithDefault("DB_USER", "")
	c.DBPassword = getEnvWithDefault("DB_PASS", "")
	c.DBName = getEnvWithDefault("DB_NAME", "vinom_tilt")
	c.GameConfigPath = getEnvWithDefault("GAME_CONFIG", "")
	return c, nil
}

// MongoURI returns the connection string for the run history database.
func (c Config) MongoURI() string {
	if c.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%v", c.DBHost, c.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%v", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// mustGetEnv retrieves the value of a required environment variable.
func mustGetEnv(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", fmt.Errorf("%s: %w", key, ErrMissingEnv)
	}
	return value, nil
}

// getEnvAsInt retrieves the value of an environment variable as an integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
