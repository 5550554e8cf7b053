package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Foursquare FoursquareConfig
	Import     ImportConfig
	Log        LogConfig
	Worker     WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type FoursquareConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	// RequestDelay is the minimum pause between outbound provider calls.
	RequestDelay time.Duration
	// CacheTTL bounds the freshness window of cached search responses.
	CacheTTL time.Duration
	// MaxPerRequest is the provider's hard per-request result cap.
	MaxPerRequest int
}

type ImportConfig struct {
	// BatchSize is the number of rows per upsert batch.
	BatchSize int
	// DefaultCityTarget is the per-city venue target when the caller
	// supplies none.
	DefaultCityTarget int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Foursquare: FoursquareConfig{
			APIKey:         viper.GetString("FOURSQUARE_API_KEY"),
			BaseURL:        viper.GetString("FOURSQUARE_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("FOURSQUARE_REQUEST_TIMEOUT")) * time.Second,
			RequestDelay:   time.Duration(viper.GetInt("FOURSQUARE_REQUEST_DELAY_MS")) * time.Millisecond,
			CacheTTL:       time.Duration(viper.GetInt("FOURSQUARE_CACHE_TTL")) * time.Second,
			MaxPerRequest:  viper.GetInt("FOURSQUARE_MAX_PER_REQUEST"),
		},
		Import: ImportConfig{
			BatchSize:         viper.GetInt("IMPORT_BATCH_SIZE"),
			DefaultCityTarget: viper.GetInt("IMPORT_DEFAULT_CITY_TARGET"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Foursquare.BaseURL == "" {
		cfg.Foursquare.BaseURL = "https://api.foursquare.com/v3"
	}
	if cfg.Foursquare.RequestTimeout == 0 {
		cfg.Foursquare.RequestTimeout = 30 * time.Second
	}
	if cfg.Foursquare.RequestDelay == 0 {
		cfg.Foursquare.RequestDelay = 200 * time.Millisecond
	}
	if cfg.Foursquare.CacheTTL == 0 {
		cfg.Foursquare.CacheTTL = 24 * time.Hour
	}
	if cfg.Foursquare.MaxPerRequest == 0 {
		cfg.Foursquare.MaxPerRequest = 50
	}
	if cfg.Import.BatchSize == 0 {
		cfg.Import.BatchSize = 50
	}
	if cfg.Import.DefaultCityTarget == 0 {
		cfg.Import.DefaultCityTarget = 100
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "activity-import-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
