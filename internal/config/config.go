package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Server
	Env         string
	Port        string
	CORSOrigins []string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// JWT
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	// Messaging
	AMQPURL      string
	AMQPExchange string
}

var appConfig *Config

// defaults lists every supported key with its fallback value.
var defaults = map[string]string{
	"ENV":                    "development",
	"PORT":                   "8080",
	"CORS_ORIGINS":           "*",
	"DB_DRIVER":              "postgres",
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "fintrack",
	"DB_PASSWORD":            "fintrack",
	"DB_NAME":                "fintrack",
	"DB_SSLMODE":             "disable",
	"DB_PATH":                "fintrack.db",
	"JWT_SECRET":             "fallback-secret-key-for-dev-only",
	"JWT_ACCESS_EXPIRES_IN":  "1h",
	"JWT_REFRESH_EXPIRES_IN": "720h",
	"AMQP_URL":               "",
	"AMQP_EXCHANGE":          "fintrack.events",
}

// Load loads configuration from a .env file, the environment and an optional
// YAML file named by CONFIG_FILE. Environment variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("Warning: could not read config file %s: %v\n", file, err)
		}
	}

	config := &Config{
		Env:         v.GetString("ENV"),
		Port:        v.GetString("PORT"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),
		DBPath:     v.GetString("DB_PATH"),

		JWTSecret: v.GetString("JWT_SECRET"),

		AMQPURL:      v.GetString("AMQP_URL"),
		AMQPExchange: v.GetString("AMQP_EXCHANGE"),
	}

	config.AccessTokenExpiry = parseDuration(v, "JWT_ACCESS_EXPIRES_IN", time.Hour)
	config.RefreshTokenExpiry = parseDuration(v, "JWT_REFRESH_EXPIRES_IN", 30*24*time.Hour)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
