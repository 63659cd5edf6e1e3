package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	StorePath  string
	DataSource string // "local" or "remote"
	APIBaseURL string
	UploadDir  string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		StorePath:  getEnv("STORE_PATH", "lp_data.json"),
		DataSource: getEnv("DATA_SOURCE", "local"),
		APIBaseURL: getEnv("API_BASE_URL", "http://127.0.0.1:8000"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
