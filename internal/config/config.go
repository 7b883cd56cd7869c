package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	// Records holds the domain configuration: the fixed list page size, the
	// staff role enumeration and the credential derivation cost. These are
	// configuration values, not business logic. StaffRoles enumerates the
	// registrable roles; AdminRoles names the subset that manages records.
	Records struct {
		PageSize             int      `yaml:"page_size" env:"RECORDS_PAGE_SIZE"`
		StaffRoles           []string `yaml:"staff_roles" env:"RECORDS_STAFF_ROLES"`
		AdminRoles           []string `yaml:"admin_roles" env:"RECORDS_ADMIN_ROLES"`
		CredentialIterations int      `yaml:"credential_iterations" env:"RECORDS_CREDENTIAL_ITERATIONS"`
		GPAMin               float64  `yaml:"gpa_min" env:"RECORDS_GPA_MIN"`
		GPAMax               float64  `yaml:"gpa_max" env:"RECORDS_GPA_MAX"`
	} `yaml:"records"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; env vars alone are enough for containerized runs
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "registra"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.Issuer = "registra.app"

	config.Records.PageSize = 10
	config.Records.StaffRoles = []string{"admin", "registrar"}
	config.Records.AdminRoles = []string{"admin"}
	config.Records.CredentialIterations = 210000
	config.Records.GPAMin = 0.0
	config.Records.GPAMax = 4.0

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Records.PageSize <= 0 {
		return fmt.Errorf("records page size must be positive")
	}

	if len(config.Records.StaffRoles) == 0 {
		return fmt.Errorf("at least one staff role is required")
	}

	// The admin role must always be present: it guards record management
	if !slices.Contains(config.Records.StaffRoles, "admin") {
		return fmt.Errorf("staff roles must include admin")
	}

	// Administrative roles are a subset of the registrable roles
	for _, role := range config.Records.AdminRoles {
		if !slices.Contains(config.Records.StaffRoles, role) {
			return fmt.Errorf("admin role %q is not a configured staff role", role)
		}
	}

	if config.Records.GPAMin > config.Records.GPAMax {
		return fmt.Errorf("gpa_min must not exceed gpa_max")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsValidStaffRole reports whether role belongs to the configured enumeration.
func (c *Config) IsValidStaffRole(role string) bool {
	return slices.Contains(c.Records.StaffRoles, strings.TrimSpace(role))
}
