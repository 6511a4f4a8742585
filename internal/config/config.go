package config

import (
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, read from the environment.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	// Remote backend settings. Both must be present and well-formed for the
	// Supabase backend to be selected.
	SupabaseURL     string
	SupabaseAnonKey string
}

// Load reads configuration from the environment, after loading a .env file
// if one exists.
func Load() Config {
	// A missing .env is not an error; the environment wins either way.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("MOODRING_PORT", "8080"),
		DBPath:          os.Getenv("MOODRING_DB_PATH"),
		LogLevel:        getEnv("MOODRING_LOG_LEVEL", "info"),
		SupabaseURL:     os.Getenv("MOODRING_SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("MOODRING_SUPABASE_ANON_KEY"),
	}
}

// RemoteConfigured reports whether the remote backend settings are complete:
// both values present and the endpoint a parseable http(s) URL.
func (c Config) RemoteConfigured() bool {
	if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
		return false
	}
	u, err := url.Parse(c.SupabaseURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// RemotePartial reports whether remote settings were supplied but are
// incomplete or malformed. Used to warn before falling back to the memory
// backend, so a partial config never silently selects the remote variant.
func (c Config) RemotePartial() bool {
	if c.SupabaseURL == "" && c.SupabaseAnonKey == "" {
		return false
	}
	return !c.RemoteConfigured()
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
