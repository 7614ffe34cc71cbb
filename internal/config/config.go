package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Catalog    CatalogConfig
	Mail       MailConfig
	Enrollment EnrollmentConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

// CatalogConfig names the catalog source documents. Sources maps a source
// key ("all", "featured", "internship") to a file path or URL.
type CatalogConfig struct {
	Sources      map[string]string
	FetchTimeout time.Duration
}

type MailConfig struct {
	URL     string `yaml:"url"`
	Timeout time.Duration
}

type EnrollmentConfig struct {
	SessionTTL     time.Duration
	MinimumAge     int
	DefaultCountry string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.body_limit_mb", 10)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("catalog.sources.all", "assets/data/courses.xml")
	viper.SetDefault("catalog.sources.featured", "assets/data/trending_courses.xml")
	viper.SetDefault("catalog.sources.internship", "assets/data/internships.xml")
	viper.SetDefault("catalog.fetch_timeout", 15)
	viper.SetDefault("mail.timeout", 30)
	viper.SetDefault("enrollment.session_ttl", 3600)
	viper.SetDefault("enrollment.minimum_age", 13)
	viper.SetDefault("enrollment.default_country", "in")

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover every knob; only a malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit_mb") * 1024 * 1024,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Catalog: CatalogConfig{
			Sources:      viper.GetStringMapString("catalog.sources"),
			FetchTimeout: viper.GetDuration("catalog.fetch_timeout") * time.Second,
		},
		Mail: MailConfig{
			URL:     viper.GetString("mail.url"),
			Timeout: viper.GetDuration("mail.timeout") * time.Second,
		},
		Enrollment: EnrollmentConfig{
			SessionTTL:     viper.GetDuration("enrollment.session_ttl") * time.Second,
			MinimumAge:     viper.GetInt("enrollment.minimum_age"),
			DefaultCountry: viper.GetString("enrollment.default_country"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}
	if mailURL := os.Getenv("MAIL_URL"); mailURL != "" {
		config.Mail.URL = mailURL
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", port, err)
		}
		config.Server.Port = n
	}

	return config, nil
}
