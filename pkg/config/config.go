package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Recommender RecommenderConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CatalogTTLSec int
}

// RecommenderConfig exposes the scoring knobs. The two rate constants
// are heuristics, not derived values, so they stay tunable instead of
// living as literals in the scoring code.
type RecommenderConfig struct {
	WeightReward       float64
	WeightFeature      float64
	WeightPromotion    float64
	WeightAnnualFeeROI float64
	BestCaseRewardRate float64
	ROITargetRate      float64
	DefaultLimit       int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "CardPilot"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "card_pilot"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       getEnvBool("REDIS_ENABLED", false),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			CatalogTTLSec: getEnvInt("REDIS_CATALOG_TTL_SEC", 300),
		},
		Recommender: RecommenderConfig{
			WeightReward:       getEnvFloat("RECO_WEIGHT_REWARD", 0.40),
			WeightFeature:      getEnvFloat("RECO_WEIGHT_FEATURE", 0.25),
			WeightPromotion:    getEnvFloat("RECO_WEIGHT_PROMOTION", 0.15),
			WeightAnnualFeeROI: getEnvFloat("RECO_WEIGHT_ANNUAL_FEE_ROI", 0.20),
			BestCaseRewardRate: getEnvFloat("RECO_BEST_CASE_REWARD_RATE", 5.0),
			ROITargetRate:      getEnvFloat("RECO_ROI_TARGET_RATE", 5.0),
			DefaultLimit:       getEnvInt("RECO_DEFAULT_LIMIT", 5),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}

	return defaultVal
}
