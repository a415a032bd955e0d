package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultDataFileName is the working gazetteer filename inside the data
// directory.
const DefaultDataFileName = "gazetteer.json"

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Gazetteer configuration
	Title            string
	UserAgent        string
	GeoNamesUsername string
	Sources          []string
	RequestInterval  time.Duration
	DataDir          string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.gazetteer.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GAZETTEER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// GeoNames publishes its username outside our prefix convention.
	_ = viper.BindEnv("geonames_username", "GEONAMES_USERNAME", "GAZETTEER_GEONAMES_USERNAME")

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".gazetteer")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		Title:            viper.GetString("title"),
		UserAgent:        viper.GetString("user_agent"),
		GeoNamesUsername: viper.GetString("geonames_username"),
		Sources:          viper.GetStringSlice("sources"),
		RequestInterval:  viper.GetDuration("request_interval"),
		DataDir:          viper.GetString("data_dir"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if config.DataDir == "" {
		config.DataDir = defaultDataDir()
	}

	return config, nil
}

// DataFile returns the path of the working gazetteer file.
func (c *Config) DataFile() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, DefaultDataFileName)
}

// UpdateFromFlags updates config values from parsed command flags so
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// defaultDataDir places the working gazetteer under the user config
// directory, falling back to the current directory.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "gazetteer")
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
