package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration shared by the service binaries
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Services  ServicesConfig
	Storage   StorageConfig
	Google    GoogleConfig
	Telegram  TelegramConfig
	Domain    DomainConfig
	Scheduler SchedulerConfig
}

// AppConfig holds application-specific settings.
// Port is empty unless set explicitly; each service binary falls back to
// its own default port.
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig holds per-entity cache TTLs
type CacheConfig struct {
	DefaultTTL  time.Duration
	ContentTTL  time.Duration
	LandingTTL  time.Duration
	TemplateTTL time.Duration
	ProductTTL  time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
}

// ServicesConfig holds base URLs of the backend services for the gateway
// and for inter-service clients
type ServicesConfig struct {
	LandingURL     string
	ContentURL     string
	TemplateURL    string
	MediaURL       string
	IntegrationURL string
	OrderURL       string
}

// StorageConfig holds S3-compatible object storage settings
type StorageConfig struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	BaseURL      string // public URL prefix for stored objects
	UseSSL       bool
	UsePathStyle bool
}

// GoogleConfig holds Google Sheets API settings
type GoogleConfig struct {
	ApplicationName     string
	CredentialsFilePath string
}

// TelegramConfig holds platform-wide Telegram bot settings
type TelegramConfig struct {
	Enabled  bool
	APIURL   string
	BotToken string
	ChatID   string
}

// DomainConfig holds landing domain resolution settings
type DomainConfig struct {
	Base string // base domain stripped from Host headers, e.g. "volzhck.ru"
}

// SchedulerConfig holds the spreadsheet sync scheduler configuration
type SchedulerConfig struct {
	Enabled       bool
	CheckInterval time.Duration
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with KLS_ prefix (e.g., KLS_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("KLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The sync scheduler runs unless it is switched off explicitly
	v.SetDefault("scheduler.enabled", true)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			DefaultTTL:  v.GetDuration("cache.default_ttl"),
			ContentTTL:  v.GetDuration("cache.content_ttl"),
			LandingTTL:  v.GetDuration("cache.landing_ttl"),
			TemplateTTL: v.GetDuration("cache.template_ttl"),
			ProductTTL:  v.GetDuration("cache.product_ttl"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
		},
		Services: ServicesConfig{
			LandingURL:     v.GetString("services.landing_url"),
			ContentURL:     v.GetString("services.content_url"),
			TemplateURL:    v.GetString("services.template_url"),
			MediaURL:       v.GetString("services.media_url"),
			IntegrationURL: v.GetString("services.integration_url"),
			OrderURL:       v.GetString("services.order_url"),
		},
		Storage: StorageConfig{
			Endpoint:     v.GetString("storage.endpoint"),
			Region:       v.GetString("storage.region"),
			AccessKey:    v.GetString("storage.access_key"),
			SecretKey:    v.GetString("storage.secret_key"),
			Bucket:       v.GetString("storage.bucket"),
			BaseURL:      v.GetString("storage.base_url"),
			UseSSL:       v.GetBool("storage.use_ssl"),
			UsePathStyle: v.GetBool("storage.use_path_style"),
		},
		Google: GoogleConfig{
			ApplicationName:     v.GetString("google.application_name"),
			CredentialsFilePath: v.GetString("google.credentials_file_path"),
		},
		Telegram: TelegramConfig{
			Enabled:  v.GetBool("telegram.enabled"),
			APIURL:   v.GetString("telegram.api_url"),
			BotToken: v.GetString("telegram.bot_token"),
			ChatID:   v.GetString("telegram.chat_id"),
		},
		Domain: DomainConfig{
			Base: v.GetString("domain.base"),
		},
		Scheduler: SchedulerConfig{
			Enabled:       v.GetBool("scheduler.enabled"),
			CheckInterval: v.GetDuration("scheduler.check_interval"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "klassifikator"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "klassifikator"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.DefaultTTL == 0 {
		cfg.Cache.DefaultTTL = time.Hour
	}
	if cfg.Cache.ContentTTL == 0 {
		cfg.Cache.ContentTTL = 30 * time.Minute
	}
	if cfg.Cache.LandingTTL == 0 {
		cfg.Cache.LandingTTL = 2 * time.Hour
	}
	if cfg.Cache.TemplateTTL == 0 {
		cfg.Cache.TemplateTTL = 24 * time.Hour
	}
	if cfg.Cache.ProductTTL == 0 {
		cfg.Cache.ProductTTL = time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	if cfg.Services.LandingURL == "" {
		cfg.Services.LandingURL = "http://localhost:8081"
	}
	if cfg.Services.ContentURL == "" {
		cfg.Services.ContentURL = "http://localhost:8082"
	}
	if cfg.Services.TemplateURL == "" {
		cfg.Services.TemplateURL = "http://localhost:8083"
	}
	if cfg.Services.MediaURL == "" {
		cfg.Services.MediaURL = "http://localhost:8084"
	}
	if cfg.Services.IntegrationURL == "" {
		cfg.Services.IntegrationURL = "http://localhost:8085"
	}
	if cfg.Services.OrderURL == "" {
		cfg.Services.OrderURL = "http://localhost:8086"
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "ru-central1"
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = "klassifikator-media"
	}
	if cfg.Google.ApplicationName == "" {
		cfg.Google.ApplicationName = "Klassifikator Sheets Sync"
	}
	if cfg.Google.CredentialsFilePath == "" {
		cfg.Google.CredentialsFilePath = "credentials.json"
	}
	if cfg.Telegram.APIURL == "" {
		cfg.Telegram.APIURL = "https://api.telegram.org/bot"
	}
	if cfg.Domain.Base == "" {
		cfg.Domain.Base = "volzhck.ru"
	}
	if cfg.Scheduler.CheckInterval == 0 {
		cfg.Scheduler.CheckInterval = 30 * time.Minute
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
		if c.Telegram.Enabled && c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram notifications are enabled")
		}
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
