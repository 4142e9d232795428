package config

import (
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AppConfig struct {
	Port          string
	Database      DatabaseConfig
	JWTSecret     string
	JWTExpiry     time.Duration
	Environment   string
	TaxonomyPath  string
	MaxUploadSize int64
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "resumeinsight"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetAppConfig() AppConfig {
	expiryHours, err := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))
	if err != nil || expiryHours <= 0 {
		expiryHours = 24
	}
	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE", ""), 10, 64)
	if err != nil || maxUpload <= 0 {
		maxUpload = 16 << 20 // 16 MB
	}

	return AppConfig{
		Port:          getEnv("PORT", "8081"),
		Database:      GetDatabaseConfig(),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:     time.Duration(expiryHours) * time.Hour,
		Environment:   getEnv("ENVIRONMENT", "development"),
		TaxonomyPath:  getEnv("TAXONOMY_PATH", "data/skills_taxonomy.json"),
		MaxUploadSize: maxUpload,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
