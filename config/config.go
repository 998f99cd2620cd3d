package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultQRImageURL     = "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=https://wa.me/34600000000"
	DefaultContactMessage = "We could not find your booking. Please contact our transfer desk or scan the QR code to message us on WhatsApp."
)

type Config struct {
	App   AppConfig
	Board BoardConfig
	Redis RedisConfig
}

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string
	LogLevel string `validate:"oneof=trace debug info warn warning error fatal panic"`
}

// BoardConfig controls the data sources and the two kiosk timers.
type BoardConfig struct {
	TodaySource       string        `validate:"required"`
	TomorrowSource    string        `validate:"required"`
	PageSize          int           `validate:"gte=1"`
	RotationInterval  time.Duration `validate:"gt=0"`
	InactivityTimeout time.Duration `validate:"gt=0"`
	FetchTimeout      time.Duration `validate:"gt=0"`
	RefreshInterval   time.Duration `validate:"gt=0"`
	QRImageURL        string        `validate:"omitempty,url"`
	ContactMessage    string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int `validate:"gte=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_LOG_LEVEL", "info")

	v.SetDefault("BOARD_TODAY_SOURCE", "data.json")
	v.SetDefault("BOARD_TOMORROW_SOURCE", "data_2.json")
	v.SetDefault("BOARD_PAGE_SIZE", 15)
	v.SetDefault("BOARD_ROTATION_INTERVAL", "10s")
	v.SetDefault("BOARD_INACTIVITY_TIMEOUT", "20s")
	v.SetDefault("BOARD_FETCH_TIMEOUT", "10s")
	v.SetDefault("BOARD_REFRESH_INTERVAL", "2s")
	v.SetDefault("BOARD_QR_IMAGE_URL", DefaultQRImageURL)
	v.SetDefault("BOARD_CONTACT_MESSAGE", DefaultContactMessage)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.New(), ".env")
}

// LoadConfigFrom is LoadConfig with an explicit viper instance and env file path.
// A missing env file is not an error.
func LoadConfigFrom(v *viper.Viper, envFile string) (*Config, error) {
	setDefaults(v)
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", envFile, err)
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("APP_LOG_LEVEL"),
		},
		Board: BoardConfig{
			TodaySource:       v.GetString("BOARD_TODAY_SOURCE"),
			TomorrowSource:    v.GetString("BOARD_TOMORROW_SOURCE"),
			PageSize:          v.GetInt("BOARD_PAGE_SIZE"),
			RotationInterval:  v.GetDuration("BOARD_ROTATION_INTERVAL"),
			InactivityTimeout: v.GetDuration("BOARD_INACTIVITY_TIMEOUT"),
			FetchTimeout:      v.GetDuration("BOARD_FETCH_TIMEOUT"),
			RefreshInterval:   v.GetDuration("BOARD_REFRESH_INTERVAL"),
			QRImageURL:        v.GetString("BOARD_QR_IMAGE_URL"),
			ContactMessage:    v.GetString("BOARD_CONTACT_MESSAGE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
