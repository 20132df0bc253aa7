package config

import "os"

type Config struct {
	// Environment ("local" and "tests" run on embedded SQLite)
	AppEnv string

	// Database (PostgreSQL)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Database (SQLite)
	SQLitePath string

	// Auth
	AdminUsername string
	AdminPassword string
	BearerToken   string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		AppEnv: getEnv("APP_ENV", "tests"),

		DBHost:     getEnv("DATABASE_HOST", "localhost"),
		DBPort:     getEnv("DATABASE_PORT", "5432"),
		DBUser:     getEnv("DATABASE_USER", "postgres"),
		DBPassword: getEnv("DATABASE_PASSWORD", ""),
		DBName:     getEnv("DATABASE_NAME", "blacklist_db"),
		DBSSLMode:  getEnv("DATABASE_SSLMODE", "disable"),

		SQLitePath: getEnv("SQLITE_PATH", "emails.db"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		BearerToken:   getEnv("BEARER_TOKEN", "my_static_token_123"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

// UsesSQLite reports whether the embedded engine is selected for this
// environment. Anything other than "local" or "tests" runs on PostgreSQL.
func (c *Config) UsesSQLite() bool {
	return c.AppEnv == "local" || c.AppEnv == "tests"
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
