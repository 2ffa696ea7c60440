// Package config loads console settings from an optional JSON file and the
// environment. Non-empty environment variables win over the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Backends.
const (
	BackendAds       = "ads"
	BackendWarehouse = "warehouse"
)

// DefaultEngine is the warehouse engine used when none is configured.
const DefaultEngine = "postgres"

type Config struct {
	ClientCustomerID string `json:"client_customer_id,omitempty"`
	ClientID         string `json:"client_id,omitempty"`
	ClientSecret     string `json:"client_secret,omitempty"`
	DeveloperToken   string `json:"developer_token,omitempty"`
	LoginCustomerID  string `json:"login_customer_id,omitempty"`
	RefreshToken     string `json:"refresh_token,omitempty"`

	Backend    string    `json:"backend,omitempty"`     // ads or warehouse
	APIVersion string    `json:"api_version,omitempty"` // optional
	Warehouse  Warehouse `json:"warehouse"`

	// Path is the file the config was read from, empty if none was.
	Path string `json:"-"`
}

type Warehouse struct {
	Engine string `json:"engine,omitempty"`
	DSN    string `json:"dsn,omitempty"` // optional, connect later with \connect
}

// envVar binds an environment variable to a Config field.
type envVar struct {
	name  string
	field func(*Config) *string
}

// credentials are the variables the ads backend cannot run without.
var credentials = []envVar{
	{"CLIENT_CUSTOMER_ID", func(c *Config) *string { return &c.ClientCustomerID }},
	{"CLIENT_ID", func(c *Config) *string { return &c.ClientID }},
	{"CLIENT_SECRET", func(c *Config) *string { return &c.ClientSecret }},
	{"DEVELOPER_TOKEN", func(c *Config) *string { return &c.DeveloperToken }},
	{"LOGIN_CUSTOMER_ID", func(c *Config) *string { return &c.LoginCustomerID }},
	{"REFRESH_TOKEN", func(c *Config) *string { return &c.RefreshToken }},
}

var settings = []envVar{
	{"GAQL_BACKEND", func(c *Config) *string { return &c.Backend }},
	{"GAQL_API_VERSION", func(c *Config) *string { return &c.APIVersion }},
	{"GAQL_WAREHOUSE_ENGINE", func(c *Config) *string { return &c.Warehouse.Engine }},
	{"GAQL_WAREHOUSE_DSN", func(c *Config) *string { return &c.Warehouse.DSN }},
}

// DefaultPath is ~/.config/gaql/config.json, or empty when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gaql", "config.json")
}

// Load reads the file named by $GAQL_CONFIG, or the default file if it
// exists, then applies the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("GAQL_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		err := LoadFile(path, cfg)
		switch {
		case err == nil:
			cfg.Path = path
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, err
		}
	}

	for _, vars := range [][]envVar{credentials, settings} {
		for _, v := range vars {
			if val := os.Getenv(v.name); val != "" {
				*v.field(cfg) = val
			}
		}
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if cfg.Backend == "" {
		cfg.Backend = BackendAds
	}
	cfg.Warehouse.Engine = strings.ToLower(strings.TrimSpace(cfg.Warehouse.Engine))
	if cfg.Warehouse.Engine == "" {
		cfg.Warehouse.Engine = DefaultEngine
	}
	return cfg, nil
}

// LoadFile decodes the JSON file at path into cfg.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: invalid json in %s: %w", path, err)
	}
	return nil
}

// MissingError lists the environment variables that are not set.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	var sb strings.Builder
	for i, v := range e.Vars {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("$" + v + " not set")
	}
	return sb.String()
}

// Validate checks that the selected backend can run. For the ads backend
// every credential must be present; all missing ones are reported together.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAds:
		var missing []string
		for _, v := range credentials {
			if strings.TrimSpace(*v.field(c)) == "" {
				missing = append(missing, v.name)
			}
		}
		if len(missing) > 0 {
			return &MissingError{Vars: missing}
		}
		return nil
	case BackendWarehouse:
		return nil
	default:
		return fmt.Errorf("config: backend must be one of: %s, %s (got %q)", BackendAds, BackendWarehouse, c.Backend)
	}
}
