package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values. Secrets have no
// in-code defaults and must come from the JSON file or the environment.
type AppConfig struct {
	AppPort       string
	GinMode       string
	JWTSecret     string
	TokenTTLHours int

	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	RateLimitPerMinute int
	AllowedOrigins     []string

	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration once during boot.
// Precedence: config/config.json -> defaults -> environment overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// SetForTesting replaces the cached configuration. Test helper only.
func SetForTesting(c AppConfig) {
	cfg = c
	loaded = true
}

// loadJSONConfig reads a flat JSON file into cfg if present. Returns an error
// only for invalid JSON; a missing file is ignored.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(out)
}

func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.TokenTTLHours == 0 {
		c.TokenTTLHours = 72
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "tracker"
	}
	if c.DBName == "" {
		c.DBName = "tracker"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 30
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/tracker.log"
	}
}

func applyEnvOverrides(c *AppConfig) {
	setString(&c.AppPort, "APP_PORT")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.JWTSecret, "JWT_SECRET")
	setInt(&c.TokenTTLHours, "TOKEN_TTL_HOURS")

	setString(&c.DatabaseURI, "DATABASE_URI")
	setString(&c.DBHost, "DB_HOST")
	setString(&c.DBPort, "DB_PORT")
	setString(&c.DBUser, "DB_USER")
	setString(&c.DBPassword, "DB_PASSWORD")
	setString(&c.DBName, "DB_NAME")

	setString(&c.RedisHost, "REDIS_HOST")
	setInt(&c.RedisPort, "REDIS_PORT")
	setInt(&c.RedisDB, "REDIS_DB")
	setString(&c.RedisPassword, "REDIS_PASSWORD")

	setInt(&c.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				origins = append(origins, s)
			}
		}
		if len(origins) > 0 {
			c.AllowedOrigins = origins
		}
	}

	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogPath, "LOG_PATH")
	setInt(&c.LogMaxSizeMB, "LOG_MAX_SIZE_MB")
	setInt(&c.LogMaxBackups, "LOG_MAX_BACKUPS")
	setInt(&c.LogMaxAgeDays, "LOG_MAX_AGE_DAYS")
	if v := os.Getenv("LOG_COMPRESS"); v != "" {
		c.LogCompress = v == "1" || strings.EqualFold(v, "true")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
