package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver      string
	DBSource      string
	MongoURI      string
	MongoDatabase string

	JWTSecret string
	JWTTTL    time.Duration

	PaymentBaseURL   string
	PaymentSecretKey string

	SendGridAPIKey   string
	PostmarkAPIToken string
	MailFrom         string

	AdminEmail    string
	AdminPassword string

	CORSOrigins []string
	LogLevel    string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *Config {
	// a missing .env is fine, the environment may carry everything
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Config{
		Port:             getEnv("PORT", "8000"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBSource:         getEnv("DB_SOURCE", "soucey.db"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "soucey"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           ttl,
		PaymentBaseURL:   os.Getenv("PAYMENT_BASE_URL"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		PostmarkAPIToken: os.Getenv("POSTMARK_API_TOKEN"),
		MailFrom:         getEnv("MAIL_FROM", "orders@soucey.app"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
