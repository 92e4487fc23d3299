package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Uploads  UploadsConfig  `yaml:"uploads"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port string `yaml:"port"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// SQLiteConfig contains SQLite settings (local development fallback)
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig contains session and admin bootstrap settings
type AuthConfig struct {
	SessionSecret      string `yaml:"session_secret"`
	SessionTTLMinutes  int    `yaml:"session_ttl_minutes"`
	AdminUsername      string `yaml:"admin_username"`
	AdminPassword      string `yaml:"admin_password"`
	ResetAdminPassword bool   `yaml:"reset_admin_password"`
}

// SMTPConfig contains outbound mail settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	NotifyTo string `yaml:"notify_to"`
}

// UploadsConfig contains media storage settings.
// Dir is resolved once at startup; nothing else in the application
// re-derives a storage path from the platform.
type UploadsConfig struct {
	Dir          string `yaml:"dir"`
	PublicPrefix string `yaml:"public_prefix"`
	LegacyPrefix string `yaml:"legacy_prefix"`
}

// Enabled reports whether outbound mail is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.From != ""
}

// SessionTTL returns the session validity window as a duration.
func (a AuthConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Database: DatabaseConfig{
			Type:   "sqlite",
			SQLite: SQLiteConfig{Path: "imoveis.db"},
			Postgres: PostgresConfig{
				SSLMode: "disable",
			},
		},
		Auth: AuthConfig{
			SessionSecret:     "sua-chave-secreta-litoralprime",
			SessionTTLMinutes: 30,
			AdminUsername:     "admin",
			AdminPassword:     "123456",
		},
		Uploads: UploadsConfig{
			Dir:          "static/uploads",
			PublicPrefix: "/static/uploads",
			LegacyPrefix: "/static/uploads",
		},
	}
}

// LoadConfig loads configuration from a YAML file and applies environment
// variable overrides. Precedence: environment > file > defaults.
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	if filepath != "" {
		if _, err := os.Stat(filepath); err == nil {
			data, err := os.ReadFile(filepath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)

	c.Database.Type = getEnv("DB_TYPE", c.Database.Type)
	c.Database.MySQL.Host = getEnv("DB_HOST", c.Database.MySQL.Host)
	c.Database.MySQL.Port = getEnvInt("DB_PORT", c.Database.MySQL.Port)
	c.Database.MySQL.User = getEnv("DB_USER", c.Database.MySQL.User)
	c.Database.MySQL.Password = getEnv("DB_PASSWORD", c.Database.MySQL.Password)
	c.Database.MySQL.Database = getEnv("DB_NAME", c.Database.MySQL.Database)
	c.Database.Postgres.Host = getEnv("DB_HOST", c.Database.Postgres.Host)
	c.Database.Postgres.Port = getEnvInt("DB_PORT", c.Database.Postgres.Port)
	c.Database.Postgres.User = getEnv("DB_USER", c.Database.Postgres.User)
	c.Database.Postgres.Password = getEnv("DB_PASSWORD", c.Database.Postgres.Password)
	c.Database.Postgres.Database = getEnv("DB_NAME", c.Database.Postgres.Database)
	c.Database.Postgres.SSLMode = getEnv("DB_SSLMODE", c.Database.Postgres.SSLMode)
	c.Database.SQLite.Path = getEnv("SQLITE_PATH", c.Database.SQLite.Path)

	c.Auth.SessionSecret = getEnv("SESSION_SECRET", c.Auth.SessionSecret)
	c.Auth.AdminUsername = getEnv("ADMIN_USERNAME", c.Auth.AdminUsername)
	c.Auth.AdminPassword = getEnv("ADMIN_PASSWORD", c.Auth.AdminPassword)
	c.Auth.ResetAdminPassword = getEnvBool("ADMIN_RESET_PASSWORD", c.Auth.ResetAdminPassword)

	c.SMTP.Host = getEnv("SMTP_HOST", c.SMTP.Host)
	c.SMTP.Port = getEnvInt("SMTP_PORT", c.SMTP.Port)
	c.SMTP.Username = getEnv("SMTP_USERNAME", c.SMTP.Username)
	c.SMTP.Password = getEnv("SMTP_PASSWORD", c.SMTP.Password)
	c.SMTP.From = getEnv("MAIL_FROM", c.SMTP.From)
	c.SMTP.NotifyTo = getEnv("CONTACT_NOTIFY_EMAIL", c.SMTP.NotifyTo)

	c.Uploads.Dir = getEnv("UPLOAD_DIR", c.Uploads.Dir)
	c.Uploads.PublicPrefix = getEnv("UPLOAD_PUBLIC_PREFIX", c.Uploads.PublicPrefix)
	c.Uploads.LegacyPrefix = getEnv("UPLOAD_LEGACY_PREFIX", c.Uploads.LegacyPrefix)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
