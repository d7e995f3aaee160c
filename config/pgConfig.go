package config

import (
	"fmt"
)

type DbConfig interface {
	GetConnectionString() string
}

// PostgresConfig represents the configuration needed to connect to a PostgreSQL database
type PostgresConfig struct {
	Host     string `yaml:"host" envconfig:"POSTGRES_HOST" validate:"required"`
	Port     string `yaml:"port" envconfig:"POSTGRES_PORT" validate:"required,numeric"`
	User     string `yaml:"user" envconfig:"POSTGRES_USER" validate:"required"`
	Password string `yaml:"password" envconfig:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"db_name" envconfig:"POSTGRES_NAME" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" envconfig:"POSTGRES_SSLMODE" validate:"omitempty,oneof=disable require verify-ca verify-full"`
}

func (pc *PostgresConfig) GetConnectionString() string {
	sslMode := pc.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pc.Host, pc.Port, pc.User, pc.Password, pc.DBName, sslMode)
}

func defaultPostgres() PostgresConfig {
	return PostgresConfig{
		Host:   "localhost",
		Port:   "5432",
		User:   "postgres",
		DBName: "postgres",
	}
}
