package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	DBUrl       string
	// RunMigrations applies the embedded schema on startup
	RunMigrations bool
	JWTSecret     string
	BcryptCost    int
	FrontendURL   string
	CORSOrigins   []string
	StaticDir     string
	// ExposeInternalErrors surfaces the raw cause of 500 responses
	ExposeInternalErrors bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// RabbitMQ Configuration
	RabbitMQURL    string
	EventsExchange string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
	FailedLoginBlockMinutes  int
	FailedLoginMaxAttempts   int
	// Password reset / uploads
	PasswordResetTTLMinutes int
	MaxPictureBytes         int
	UploadsPerMinute        int
	UploadsPerDay           int
}

// IsProduction switches cookie flags and CORS to their strict variants.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	env := strings.ToLower(getEnv("NODE_ENV", getEnv("APP_ENV", "development")))
	if os.Getenv("GIN_MODE") == "release" {
		env = "production"
	}

	cfg := &Config{
		Port:          getEnv("PORT", "5001"),
		Environment:   env,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		BcryptCost:    getEnvInt("BCRYPT_COST", 10),
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		StaticDir:     getEnv("STATIC_DIR", "../frontend/dist"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// RabbitMQ Configuration
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
		EventsExchange: getEnv("EVENTS_EXCHANGE", "placement.events"),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 20),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		FailedLoginBlockMinutes:  getEnvInt("FAILED_LOGIN_BLOCK_MINUTES", 15),
		FailedLoginMaxAttempts:   getEnvInt("FAILED_LOGIN_MAX_ATTEMPTS", 5),
		PasswordResetTTLMinutes:  getEnvInt("PASSWORD_RESET_TTL_MINUTES", 30),
		MaxPictureBytes:          getEnvInt("MAX_PICTURE_BYTES", 5<<20),
		UploadsPerMinute:         getEnvInt("UPLOADS_PER_MINUTE", 10),
		UploadsPerDay:            getEnvInt("UPLOADS_PER_DAY", 50),
	}
	cfg.ExposeInternalErrors = getEnvBool("EXPOSE_INTERNAL_ERRORS", !cfg.IsProduction())

	origins := []string{cfg.FrontendURL}
	for _, o := range strings.Split(getEnv("CORS_ORIGINS", ""), ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSOrigins = origins

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Token issuance will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
