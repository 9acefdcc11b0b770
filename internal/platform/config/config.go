package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	WebPort string

	JWTKey      []byte
	JWTIssuer   string
	JWTAudience string
	JWTExp      time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIBaseURL       string
	SessionIdleTTL   time.Duration
	SessionCookie    string
	APIClientTimeout time.Duration
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:          getEnv("API_PORT", "8080"),
		WebPort:          getEnv("WEB_PORT", "8081"),
		JWTKey:           []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTIssuer:        getEnv("JWT_ISSUER", "studybuddy-api"),
		JWTAudience:      getEnv("JWT_AUDIENCE", "studybuddy-web"),
		JWTExp:           time.Duration(getEnvAsInt("JWT_EXPIRATION_MINUTES", 60)) * time.Minute,
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "user"),
		DBPassword:       getEnv("DB_PASSWORD", "password"),
		DBName:           getEnv("DB_NAME", "studybuddy_db"),
		DBSslMode:        getEnv("DB_SSLMODE", "disable"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		SessionIdleTTL:   time.Duration(getEnvAsInt("SESSION_IDLE_MINUTES", 30)) * time.Minute,
		SessionCookie:    getEnv("SESSION_COOKIE_NAME", "sb_session"),
		APIClientTimeout: time.Duration(getEnvAsInt("API_CLIENT_TIMEOUT_SECONDS", 15)) * time.Second,
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
