package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"cargo/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	UnitPricePerKg        kernel.Rate
	BarcodeMaxAttempts    int
	ReceiptCron           string
	NotificationQueueSize int

	// PaymentLinks maps lower-cased pickup points to payment pages.
	PaymentLinks map[string]string
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present. CONFIG_FILE may name a
// YAML file with the payment_links table and any of the other keys.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "cargo")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("UNIT_PRICE_PER_KG", "500")
	v.SetDefault("BARCODE_MAX_ATTEMPTS", 5)
	v.SetDefault("RECEIPT_CRON", "0 0 2 * * *")
	v.SetDefault("NOTIFICATION_QUEUE_SIZE", 1024)

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	price, err := decimal.NewFromString(v.GetString("UNIT_PRICE_PER_KG"))
	if err != nil {
		return Config{}, fmt.Errorf("UNIT_PRICE_PER_KG: %w", err)
	}
	rate, err := kernel.NewRate(price)
	if err != nil {
		return Config{}, fmt.Errorf("UNIT_PRICE_PER_KG: %w", err)
	}

	cfg := Config{
		HTTPPort:              v.GetString("HTTP_PORT"),
		DBHost:                v.GetString("DB_HOST"),
		DBPort:                v.GetString("DB_PORT"),
		DBUser:                v.GetString("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBName:                v.GetString("DB_NAME"),
		DBSslMode:             v.GetString("DB_SSLMODE"),
		UnitPricePerKg:        rate,
		BarcodeMaxAttempts:    v.GetInt("BARCODE_MAX_ATTEMPTS"),
		ReceiptCron:           v.GetString("RECEIPT_CRON"),
		NotificationQueueSize: v.GetInt("NOTIFICATION_QUEUE_SIZE"),
		PaymentLinks:          v.GetStringMapString("payment_links"),
	}

	if cfg.BarcodeMaxAttempts < 1 {
		return Config{}, fmt.Errorf("BARCODE_MAX_ATTEMPTS must be positive, got %d", cfg.BarcodeMaxAttempts)
	}
	if cfg.NotificationQueueSize < 1 {
		return Config{}, fmt.Errorf("NOTIFICATION_QUEUE_SIZE must be positive, got %d", cfg.NotificationQueueSize)
	}

	return cfg, nil
}
