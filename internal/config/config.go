package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	KPI      KPIConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// KPIConfig holds the tunable scoring constants. ProductionScaleKg is the
// daily output treated as 100% productivity; SafetyMonthlyTarget is the
// default incident ceiling applied when a month's snapshot carries none.
type KPIConfig struct {
	ProductionScaleKg   float64
	SafetyMonthlyTarget int
}

func Load() (*Config, error) {
	// .env is optional; env vars win in containerized deployments.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "opsboard-kpi"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// KPI tuning
	scaleKg, err := strconv.ParseFloat(getEnv("KPI_PRODUCTION_SCALE_KG", "1000"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid KPI_PRODUCTION_SCALE_KG: %w", err)
	}
	safetyTarget, err := strconv.Atoi(getEnv("KPI_SAFETY_MONTHLY_TARGET", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid KPI_SAFETY_MONTHLY_TARGET: %w", err)
	}

	config.KPI = KPIConfig{
		ProductionScaleKg:   scaleKg,
		SafetyMonthlyTarget: safetyTarget,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.KPI.ProductionScaleKg <= 0 {
		return fmt.Errorf("KPI_PRODUCTION_SCALE_KG must be positive")
	}
	if c.KPI.SafetyMonthlyTarget < 0 {
		return fmt.Errorf("KPI_SAFETY_MONTHLY_TARGET must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
