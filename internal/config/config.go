package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is the externally reachable root used to derive preview
	// URLs without a network round trip (e.g. an image proxy in front of the
	// bucket).
	PublicBaseURL string
}

// FunctionsConfig holds settings for the hosted function-execution service
// that fronts the payment providers.
type FunctionsConfig struct {
	BaseURL string
	APIKey  string
	// Deployed function ids, one per provider operation.
	EukapayInvoicesFn string
	EukapayInvoiceFn  string
	StripeLinksFn     string
	StripePaymentFn   string
}

// AuthConfig holds settings for the hosted session service.
type AuthConfig struct {
	BaseURL    string
	ProjectKey string
}

// PreviewConfig fixes the preview variants derived for stored assets.
// Sizes are square (width == height).
type PreviewConfig struct {
	AvatarSize int
	LogoSize   int
	// InitialsBaseURL is the avatar-generation endpoint used when a client is
	// created without a logo file.
	InitialsBaseURL string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Functions FunctionsConfig
	Auth      AuthConfig
	Previews  PreviewConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: getEnv("MINIO_PUBLIC_BASE_URL", ""),
		},
		Functions: FunctionsConfig{
			BaseURL:           getEnv("FUNCTIONS_BASE_URL", ""),
			APIKey:            getEnv("FUNCTIONS_API_KEY", ""),
			EukapayInvoicesFn: getEnv("FN_EUKAPAY_INVOICES", ""),
			EukapayInvoiceFn:  getEnv("FN_EUKAPAY_INVOICE", ""),
			StripeLinksFn:     getEnv("FN_STRIPE_LINKS", ""),
			StripePaymentFn:   getEnv("FN_STRIPE_PAYMENT", ""),
		},
		Auth: AuthConfig{
			BaseURL:    getEnv("AUTH_BASE_URL", ""),
			ProjectKey: getEnv("AUTH_PROJECT_KEY", ""),
		},
		Previews: PreviewConfig{
			AvatarSize:      getEnvInt("PREVIEW_AVATAR_SIZE", 400),
			LogoSize:        getEnvInt("PREVIEW_LOGO_SIZE", 2000),
			InitialsBaseURL: getEnv("AVATAR_INITIALS_BASE_URL", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
