package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type SpartooConfig struct {
	Partner           string        `yaml:"partner" envconfig:"SPARTOO_PARTNER" validate:"required"`
	BaseURL           string        `yaml:"base_url" envconfig:"SPARTOO_BASE_URL" validate:"required,url"`
	Language          string        `yaml:"language" envconfig:"SPARTOO_LANGUAGE" validate:"required,len=2,alpha"`
	ProvisioningDir   string        `yaml:"provisioning_dir" envconfig:"SPARTOO_PROVISIONING_DIR" validate:"required"`
	RequestsPerMinute int           `yaml:"requests_per_minute" envconfig:"SPARTOO_REQUESTS_PER_MINUTE" validate:"gte=0"`
	Timeout           time.Duration `yaml:"timeout" envconfig:"SPARTOO_TIMEOUT" validate:"gte=0"`
}

type JournalConfig struct {
	Enabled  bool           `yaml:"enabled" envconfig:"SPARTOO_JOURNAL"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type AppConfig struct {
	Spartoo SpartooConfig `yaml:"spartoo"`
	Journal JournalConfig `yaml:"journal"`
	LogFile string        `yaml:"log_file" envconfig:"SPARTOO_LOG_FILE"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Spartoo: SpartooConfig{
			BaseURL:           "https://sws.spartoo.com",
			Language:          "FR",
			ProvisioningDir:   "./provisionning",
			RequestsPerMinute: 60,
			Timeout:           30 * time.Second,
		},
		Journal: JournalConfig{Postgres: defaultPostgres()},
	}
}

// LoadConfig reads the YAML file (when filename is not empty), overlays the
// environment and validates the result.
func LoadConfig(filename string) (*AppConfig, error) {
	config := defaultConfig()

	if filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
		}
	}

	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func Validate(config *AppConfig) error {
	validate := validator.New()
	if err := validate.Struct(config.Spartoo); err != nil {
		return fmt.Errorf("invalid spartoo configuration: %w", err)
	}
	if config.Journal.Enabled {
		if err := validate.Struct(config.Journal.Postgres); err != nil {
			return fmt.Errorf("invalid journal configuration: %w", err)
		}
	}
	return nil
}
