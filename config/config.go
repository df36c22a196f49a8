package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCMSTimeout bounds every request to the CMS; expiry surfaces as a RequestError.
const DefaultCMSTimeout = 5 * time.Second

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// CMS (Strapi)
	CMSBaseURL  string
	CMSAPIToken string
	CMSTimeout  time.Duration
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	ContactInbox  string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Other
	AllowedOrigins []string
	DefaultLocale  string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	cmsURL := strings.TrimRight(getEnv("CMS_URL", "http://localhost:1337"), "/")
	if environment == "production" && getEnv("CMS_URL", "") == "" {
		log.Println("[WARNING] CMS_URL is not set in production; all content fetches will fail")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        environment,
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		CMSBaseURL:         cmsURL,
		CMSAPIToken:        getEnv("CMS_API_TOKEN", ""),
		CMSTimeout:         getEnvDuration("CMS_TIMEOUT_SECONDS", DefaultCMSTimeout),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@alwakeel-law.com"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Al Wakeel Law Firm"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		ContactInbox:       getEnv("CONTACT_INBOX", "info@alwakeel-law.com"),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", "en"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration reads a whole number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		log.Printf("[WARNING] Invalid %s=%q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return time.Duration(secs) * time.Second
}
