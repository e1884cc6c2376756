package convert

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages conversion settings using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Credits conversion parameters
	v.SetDefault("credits.principals_file", "")
	v.SetDefault("credits.names_file", "")
	v.SetDefault("credits.titles_file", "")
	v.SetDefault("credits.roles", []string{"director", "actor", "actress"})
	v.SetDefault("credits.member_cap", 3)
	v.SetDefault("credits.names_label_column", 1)
	v.SetDefault("credits.titles_label_column", 2)

	// Food-web conversion parameters
	v.SetDefault("foodweb.links_file", "")
	v.SetDefault("foodweb.labels_file", "")
	v.SetDefault("foodweb.universe", 0)
	v.SetDefault("foodweb.exclude", []int{})

	// Motif enumeration parameters
	v.SetDefault("motif.workers", 1)

	// Output parameters
	v.SetDefault("output.dir", "output")
	v.SetDefault("output.prefix", "dataset")

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.service", "convert")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for credits parameters
func (c *Config) PrincipalsFile() string { return c.v.GetString("credits.principals_file") }
func (c *Config) NamesFile() string      { return c.v.GetString("credits.names_file") }
func (c *Config) TitlesFile() string     { return c.v.GetString("credits.titles_file") }
func (c *Config) Roles() []string        { return c.v.GetStringSlice("credits.roles") }
func (c *Config) MemberCap() int         { return c.v.GetInt("credits.member_cap") }
func (c *Config) NamesLabelColumn() int  { return c.v.GetInt("credits.names_label_column") }
func (c *Config) TitlesLabelColumn() int { return c.v.GetInt("credits.titles_label_column") }

// Getters for food-web parameters
func (c *Config) LinksFile() string  { return c.v.GetString("foodweb.links_file") }
func (c *Config) LabelsFile() string { return c.v.GetString("foodweb.labels_file") }
func (c *Config) Universe() int      { return c.v.GetInt("foodweb.universe") }
func (c *Config) Exclude() []int     { return c.v.GetIntSlice("foodweb.exclude") }

func (c *Config) Workers() int { return c.v.GetInt("motif.workers") }

func (c *Config) OutputDir() string { return c.v.GetString("output.dir") }
func (c *Config) Prefix() string    { return c.v.GetString("output.prefix") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) Service() string  { return c.v.GetString("logging.service") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// SetDefault adjusts a default without overriding file-loaded values
func (c *Config) SetDefault(key string, value interface{}) {
	c.v.SetDefault(key, value)
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", c.Service()).Logger()
}
