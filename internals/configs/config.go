package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	FaceAPIURL     string
	TelegramToken  string
	TelegramChatID string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	FaceAPIURL = GetEnvDefault("FACE_API_URL", "http://localhost:5001")
	TelegramToken = GetEnv("TELEGRAM_BOT_TOKEN")
	TelegramChatID = GetEnv("TELEGRAM_CHAT_ID")

	if JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET not set, dashboard identity will fall back to sample data")
	}
	if TelegramToken == "" {
		log.Println("ℹ️ TELEGRAM_BOT_TOKEN not set, attendance notifications disabled")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
