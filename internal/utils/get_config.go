package utils

import (
	"os"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBSource   string `yaml:"DB_SOURCE"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// HTTP server
	AppPort      string `yaml:"APP_PORT"`
	CORSOrigins  string `yaml:"CORS_ORIGINS"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`

	// JWT
	JWTSecret   string `yaml:"JWT_SECRET"`
	JWTTTLHours string `yaml:"JWT_TTL_HOURS"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Seeded administrator
	AdminEmail    string `yaml:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`
}

var (
	config     Config
	configOnce sync.Once
)

var defaults = map[string]string{
	"DB_DRIVER":        "postgres",
	"DB_SOURCE":        "spice-garden.db",
	"APP_PORT":         "8080",
	"CORS_ORIGINS":     "*",
	"RATE_LIMIT_MAX":   "20",
	"JWT_TTL_HOURS":    "24",
	"SMTP_PORT":        "587",
	"SMTP_SENDER_NAME": "Spice Garden",
}

// LoadConfig reads .env and config.yaml once. Both files are optional; the
// process environment always wins over them.
func LoadConfig() {
	configOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warnf("error reading .env file: %s", err)
		}

		file, err := os.ReadFile("config.yaml")
		if err != nil {
			if !os.IsNotExist(err) {
				log.Warnf("error reading YAML file: %s", err)
			}
			return
		}

		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Errorf("error parsing YAML file: %s", err)
		}
	})
}

func GetConfig(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return defaults[key]
}

// GetConfigInt falls back to the built-in default when the value is not a number.
func GetConfigInt(key string) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		n, _ = strconv.Atoi(defaults[key])
	}
	return n
}

func fromFile(key string) string {
	switch key {
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_SOURCE":
		return config.DBSource
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "APP_PORT":
		return config.AppPort
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_TTL_HOURS":
		return config.JWTTTLHours
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "ADMIN_EMAIL":
		return config.AdminEmail
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	default:
		return ""
	}
}
