package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	DataDir         string
	UploadDir       string
	PublicUploadURL string
	FirebaseProject string
	StorePhone      string
	MaxUploadSize   int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DataDir:         getEnv("DATA_DIR", "data"),
		UploadDir:       getEnv("UPLOAD_DIR", "public/uploads"),
		PublicUploadURL: getEnv("PUBLIC_UPLOAD_URL", "/uploads"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorePhone:      getEnv("STORE_PHONE", "+249116134260"),
		MaxUploadSize:   getEnvAsInt64("MAX_UPLOAD_SIZE", 0),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
