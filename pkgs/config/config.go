package config

import (
	"bufio"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	RootPath    string         `yaml:"root_path"`
	BearerToken string         `yaml:"bearer_token"`
	CacheSize   int            `yaml:"cache_size"`
	Database    DatabaseConfig `yaml:"database"`
}

////////////////////////////////////////////////////////////////////////////////

// DatabaseConfig represents snapshot database configuration
type DatabaseConfig struct {
	Type string `yaml:"type"` // "sqlite" or "postgres"

	Host     string `yaml:"host"`     // For PostgreSQL
	Port     string `yaml:"port"`     // For PostgreSQL
	User     string `yaml:"user"`     // For PostgreSQL
	Password string `yaml:"password"` // For PostgreSQL
	DBName   string `yaml:"dbname"`   // For PostgreSQL

	Path string `yaml:"path"` // For SQLite
}

const (
	DATABASE_TYPE_SQLITE   = "sqlite"
	DATABASE_TYPE_POSTGRES = "postgres"
)

////////////////////////////////////////////////////////////////////////////////

// ParseConfigFromFile reads configuration from the specified path
func ParseConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result Config
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WriteConfigToFile saves configuration to the specified path
func WriteConfigToFile(conf *Config, path string) error {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// PromptConfig interactively prompts user for configuration and saves it
func PromptConfig(saveto string) (*Config, error) {
	conf := Config{}
	scan := bufio.NewScanner(os.Stdin)

	////////////////////////////////////////////////////////////////////////////

	print("enter storage dir: ")
	scan.Scan()
	storePath := scan.Text()
	err := os.MkdirAll(storePath, 0755)
	if err != nil {
		return nil, err
	}
	storePath, err = filepath.Abs(storePath)
	if err != nil {
		return nil, err
	}
	conf.RootPath = storePath

	////////////////////////////////////////////////////////////////////////////

	print("enter bearer token: ")
	scan.Scan()
	conf.BearerToken = scan.Text()

	////////////////////////////////////////////////////////////////////////////

	conf.Database.Type = DATABASE_TYPE_SQLITE
	conf.Database.Path = filepath.Join(storePath, "xconnect.db")

	if err := WriteConfigToFile(&conf, saveto); err != nil {
		return nil, err
	}
	return &conf, nil
}
