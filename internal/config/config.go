// Package config loads the configuration of the rolegate binary.
//
// Values come from an optional YAML file and can be overridden by environment
// variables named ROLEGATE_<KEY>, for example ROLEGATE_ADDR.
package config

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/go-playground/errors/v5"
	"gopkg.in/yaml.v3"
)

// Snapshot backends selectable in the configuration.
const (
	BackendCookie   = "cookie"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSpanner  = "spanner"
)

// Token issuers selectable in the configuration.
const (
	IssuerPlaceholder = "placeholder"
	IssuerUUID        = "uuid"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Login    LoginConfig    `yaml:"login"`
	CLI      CLIConfig      `yaml:"cli"`
}

// ServerConfig configures the HTTP server and its cookies.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	CookieKey    string `yaml:"cookie_key"`
	CookieName   string `yaml:"cookie_name"`
	CookieDomain string `yaml:"cookie_domain"`
}

// SnapshotConfig selects where the HTTP server keeps session snapshots.
type SnapshotConfig struct {
	Backend         string `yaml:"backend"`
	PostgresURL     string `yaml:"postgres_url"`
	SpannerDatabase string `yaml:"spanner_database"`
	SpannerTable    string `yaml:"spanner_table"`
}

// LoginConfig configures the login flows.
type LoginConfig struct {
	Issuer string `yaml:"issuer"`
}

// CLIConfig configures the command line session.
type CLIConfig struct {
	SessionFile string `yaml:"session_file"`
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path loads the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "os.ReadFile()")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "yaml.Unmarshal()")
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:       ":8080",
			CookieName: "client",
		},
		Snapshot: SnapshotConfig{
			Backend:      BackendCookie,
			SpannerTable: "Snapshots",
		},
		Login: LoginConfig{
			Issuer: IssuerPlaceholder,
		},
		CLI: CLIConfig{
			SessionFile: ".rolegate-session.yaml",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	overrides := []struct {
		env   string
		field *string
	}{
		{"ROLEGATE_ADDR", &cfg.Server.Addr},
		{"ROLEGATE_COOKIE_KEY", &cfg.Server.CookieKey},
		{"ROLEGATE_COOKIE_NAME", &cfg.Server.CookieName},
		{"ROLEGATE_COOKIE_DOMAIN", &cfg.Server.CookieDomain},
		{"ROLEGATE_SNAPSHOT_BACKEND", &cfg.Snapshot.Backend},
		{"ROLEGATE_POSTGRES_URL", &cfg.Snapshot.PostgresURL},
		{"ROLEGATE_SPANNER_DATABASE", &cfg.Snapshot.SpannerDatabase},
		{"ROLEGATE_SPANNER_TABLE", &cfg.Snapshot.SpannerTable},
		{"ROLEGATE_TOKEN_ISSUER", &cfg.Login.Issuer},
		{"ROLEGATE_SESSION_FILE", &cfg.CLI.SessionFile},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.field = v
		}
	}
}

// Validate checks the settings that do not depend on the command being run.
func (c *Config) Validate() error {
	var errs []string

	switch c.Snapshot.Backend {
	case BackendCookie, BackendMemory:
	case BackendPostgres:
		if c.Snapshot.PostgresURL == "" {
			errs = append(errs, "snapshot.postgres_url is required for the postgres backend")
		}
	case BackendSpanner:
		if c.Snapshot.SpannerDatabase == "" {
			errs = append(errs, "snapshot.spanner_database is required for the spanner backend")
		}
		if c.Snapshot.SpannerTable == "" {
			errs = append(errs, "snapshot.spanner_table must not be empty")
		}
	default:
		errs = append(errs, "snapshot.backend must be one of cookie, memory, postgres, spanner")
	}

	switch c.Login.Issuer {
	case IssuerPlaceholder, IssuerUUID:
	default:
		errs = append(errs, "login.issuer must be placeholder or uuid")
	}

	if c.CLI.SessionFile == "" {
		errs = append(errs, "cli.session_file is required")
	}

	if len(errs) > 0 {
		return errors.Newf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// ValidateServer checks the settings only the HTTP server needs.
func (c *Config) ValidateServer() error {
	if c.Server.CookieKey == "" {
		return errors.New("server.cookie_key is required (set ROLEGATE_COOKIE_KEY)")
	}
	if _, err := base64.StdEncoding.DecodeString(c.Server.CookieKey); err != nil {
		return errors.Wrap(err, "server.cookie_key must be base64")
	}

	return nil
}
