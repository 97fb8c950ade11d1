package app

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/suwonmate/catalogdb/pkg/constants"
	"github.com/suwonmate/catalogdb/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by catalogdb.
const EnvPrefix = "CATALOGDB"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Build defaults
	AppVersion       string
	LegacyAppVersion string
	OutputDir        string
	Pretty           bool
	Compress         bool
	Report           string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. CATALOGDB_* environment variables
//  3. .env and .env.local files
//  4. Config file (.catalogdb.yaml in the working or home directory)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// LoadConfigFile is LoadConfig with an explicit config file.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(path)
}

func loadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_version", constants.DefaultAppVersion)
	v.SetDefault("legacy_app_version", constants.DefaultLegacyAppVersion)
	v.SetDefault("output_dir", ".")
	v.SetDefault("log.format", "auto")
	v.SetDefault("log.output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config file", configFile, err)
		}
	} else {
		v.SetConfigName(".catalogdb")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		// a missing default config file is fine
		_ = v.ReadInConfig()
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		AppVersion:       v.GetString("app_version"),
		LegacyAppVersion: v.GetString("legacy_app_version"),
		OutputDir:        v.GetString("output_dir"),
		Pretty:           v.GetBool("pretty"),
		Compress:         v.GetBool("compress"),
		Report:           v.GetString("report"),

		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		LogOutput: v.GetString("log.output"),
	}, nil
}

// UpdateFromFlags updates config values from parsed persistent flags.
// Flag values take precedence over config file and env vars; empty
// strings leave the loaded value in place.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win; godotenv never
// overrides variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
