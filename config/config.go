package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisContextDB int    `mapstructure:"REDIS_CONTEXT_DB"`

	// Text generation (Gemini).
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string        `mapstructure:"GEMINI_MODEL"`
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"`

	SessionContextTTL time.Duration `mapstructure:"SESSION_CONTEXT_TTL"`

	// Therapist directory.
	TherapistCacheTTL        time.Duration `mapstructure:"THERAPIST_CACHE_TTL"`
	TherapistRefreshInterval time.Duration `mapstructure:"THERAPIST_REFRESH_INTERVAL"`
	SeedSampleTherapists     bool          `mapstructure:"SEED_SAMPLE_THERAPISTS"`

	// Resolve an origin from the client IP when the request carries no coordinates.
	GeoIPFallback bool          `mapstructure:"GEO_IP_FALLBACK"`
	GeoIPCacheTTL time.Duration `mapstructure:"GEO_IP_CACHE_TTL"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "soulsync")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CONTEXT_DB", 1)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	viper.SetDefault("GENERATION_TIMEOUT", "8s")
	viper.SetDefault("SESSION_CONTEXT_TTL", "30m")
	viper.SetDefault("THERAPIST_CACHE_TTL", "10m")
	viper.SetDefault("THERAPIST_REFRESH_INTERVAL", "15m")
	viper.SetDefault("SEED_SAMPLE_THERAPISTS", true)
	viper.SetDefault("GEO_IP_FALLBACK", false)
	viper.SetDefault("GEO_IP_CACHE_TTL", "24h")
}

func LoadConfig() {
	// A .env file is optional; real environment variables still win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// GenerationEnabled reports whether an LLM key is configured.
func GenerationEnabled() bool {
	return AppConfig.GeminiAPIKey != ""
}
