package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv string
	Port   string

	// DATABASE_URL kosong → SQLite (SQLitePath)
	DatabaseURL     string
	SQLitePath      string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnMaxLife   time.Duration
	DBSlowThreshold time.Duration

	SecretKey  string
	SessionTTL time.Duration
	RedisURL   string

	WaterUnitRate       decimal.Decimal
	ElectricityUnitRate decimal.Decimal

	PerPage     int
	CardPerPage int
	Timezone    string

	LogLevel  string
	LogFormat string

	ContractFontPath     string
	BlacklistCleanupCron string
	CorsOrigins          string
}

const (
	devSecretKey       = "dev-secret-key-change-me"
	defaultSQLitePath  = "file:rentbook?mode=memory&cache=shared"
	defaultWaterRate   = "3.5"
	defaultElecRate    = "1.2"
	defaultCleanupCron = "@daily"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

// Load membaca seluruh konfigurasi dari environment.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:               GetEnv("APP_ENV", "development"),
		Port:                 GetEnv("PORT", "5002"),
		DatabaseURL:          GetEnv("DATABASE_URL"),
		SQLitePath:           GetEnv("SQLITE_PATH", defaultSQLitePath),
		SecretKey:            GetEnv("SECRET_KEY", GetEnv("JWT_SECRET")),
		RedisURL:             GetEnv("REDIS_URL"),
		Timezone:             GetEnv("APP_TIMEZONE", "Asia/Shanghai"),
		LogLevel:             GetEnv("LOG_LEVEL", "info"),
		LogFormat:            GetEnv("LOG_FORMAT", "json"),
		ContractFontPath:     GetEnv("CONTRACT_FONT_PATH"),
		BlacklistCleanupCron: GetEnv("BLACKLIST_CLEANUP_CRON", defaultCleanupCron),
		CorsOrigins:          GetEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5002"),
	}

	var err error
	if cfg.DBMaxOpenConns, err = parseInt("DB_MAX_OPEN_CONNS", 20); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConns, err = parseInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.PerPage, err = parseInt("PER_PAGE", 10); err != nil {
		return nil, err
	}
	if cfg.CardPerPage, err = parseInt("CARD_PER_PAGE", 12); err != nil {
		return nil, err
	}
	if cfg.DBConnMaxLife, err = parseDuration("DB_CONN_MAX_LIFETIME", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.DBSlowThreshold, err = parseDuration("DB_SLOW_THRESHOLD", 200*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.WaterUnitRate, err = parseRate("WATER_UNIT_RATE", defaultWaterRate); err != nil {
		return nil, err
	}
	if cfg.ElectricityUnitRate, err = parseRate("ELECTRICITY_UNIT_RATE", defaultElecRate); err != nil {
		return nil, err
	}

	if cfg.SecretKey == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("SECRET_KEY belum diset")
		}
		cfg.SecretKey = devSecretKey
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "test"
}

func (c *Config) UsesSQLite() bool {
	return c.DatabaseURL == ""
}

func parseInt(key string, def int) (int, error) {
	raw := GetEnv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: invalid positive integer %q", key, raw)
	}
	return n, nil
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	raw := GetEnv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func parseRate(key, def string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(GetEnv(key, def))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s: rate must be positive", key)
	}
	return d, nil
}
