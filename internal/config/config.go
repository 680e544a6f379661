package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ServerPort string
	AppEnv     string
	GinMode    string

	StoreDriver string
	DBUrl       string

	Timezone    string
	SeedValue   int64
	SeedOnStart bool

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string

	S3Bucket          string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string

	AuditBuffer int

	CORSOrigins []string
}

// Load reads .env.<APP_ENV>, then .env, then the process environment.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file found, using system environment variables")
		}
	} else {
		log.Printf("loaded configuration from %s", envFile)
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "development"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		StoreDriver: getEnv("STORE_DRIVER", DriverMemory),
		DBUrl:       getEnv("DATABASE_URL", ""),

		Timezone:    getEnv("SALON_TIMEZONE", timezone.DefaultTimezone),
		SeedValue:   getEnvInt64("SEED_VALUE", 42),
		SeedOnStart: getEnvBool("SEED_ON_START", true),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@salon.co"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       int(getEnvInt64("REDIS_DB", 0)),
		RedisChannel:  getEnv("REDIS_CHANNEL", "salon:audit"),

		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),

		AuditBuffer: int(getEnvInt64("AUDIT_BUFFER", 100)),

		CORSOrigins: getEnvList("CORS_ORIGINS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if c.DBUrl == "" {
			return fmt.Errorf("DATABASE_URL is required for STORE_DRIVER=%s", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if !timezone.IsValid(c.Timezone) {
		return fmt.Errorf("invalid SALON_TIMEZONE %q", c.Timezone)
	}
	if c.AuditBuffer < 1 {
		return fmt.Errorf("AUDIT_BUFFER must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

// AuthEnabled reports whether the admin login is configured.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func (c *Config) PhotosEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvList splits a comma separated variable, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, v, def)
		return def
	}
	return b
}
