package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	MainDB     DatabaseConfig // todo lists, tasks, tags
	IdentityDB DatabaseConfig // users, roles, assignments
	NATS       NATSConfig
	Log        LogConfig
	Seed       SeedConfig
	Scheduler  SchedulerConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type NATSConfig struct {
	URL     string // nats://localhost:4222, empty disables publishing
	Enabled bool
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // number of rotated files kept
	MaxAge     int    // days
	Compress   bool
}

// SeedConfig overrides for the default administrator. The role table is
// fixed and not configurable.
type SeedConfig struct {
	AdminID       string
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

type SchedulerConfig struct {
	ReminderCron string // cron for the reminder scan job
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	natsEnabled := getEnv("NATS_ENABLED", "false") == "true"

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "todoapp"),
			Env:  getEnv("APP_ENV", "development"),
		},
		MainDB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "todoapp"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		IdentityDB: DatabaseConfig{
			Host:     getEnv("IDENTITY_DB_HOST", getEnv("DB_HOST", "localhost")),
			Port:     getEnv("IDENTITY_DB_PORT", getEnv("DB_PORT", "5432")),
			User:     getEnv("IDENTITY_DB_USER", getEnv("DB_USER", "postgres")),
			Password: getEnv("IDENTITY_DB_PASSWORD", getEnv("DB_PASSWORD", "")),
			DBName:   getEnv("IDENTITY_DB_NAME", "todoapp_identity"),
			SSLMode:  getEnv("IDENTITY_DB_SSL_MODE", getEnv("DB_SSL_MODE", "disable")),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			Enabled: natsEnabled,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Seed: SeedConfig{
			AdminID:       getEnv("SEED_ADMIN_ID", ""),
			AdminUsername: getEnv("SEED_ADMIN_USERNAME", ""),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
		Scheduler: SchedulerConfig{
			ReminderCron: getEnv("SCHEDULER_REMINDER_CRON", "* * * * *"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
