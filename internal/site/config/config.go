package config

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	defaultEnvFile      = ".env"
	defaultPort         = "8080"
	defaultBasePath     = "/"
	defaultEnvironment  = "development"
	defaultLogLevel     = "info"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

//go:embed site.yaml
var defaultSiteFile []byte

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Site    SiteConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Address      string
	BasePath     string
	Environment  string
	Dev          bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string
}

// SiteConfig is the site-wide identity document (site.yaml).
type SiteConfig struct {
	Title   string     `yaml:"title"`
	Tagline string     `yaml:"tagline"`
	URL     string     `yaml:"url"`
	BaseURL string     `yaml:"baseUrl"`
	Author  Author     `yaml:"author"`
	Social  []LinkItem `yaml:"social"`
	Navbar  []LinkItem `yaml:"navbar"`
	Routes  []string   `yaml:"routes"`
}

// Author names the person behind the site.
type Author struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// LinkItem is a labelled destination used by the navbar and footer.
type LinkItem struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	fs           afero.Fs
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
	siteFile     string
}

// WithFs swaps the filesystem used to read the .env and site files.
func WithFs(fsys afero.Fs) Option {
	return func(o *loaderOptions) {
		o.fs = fsys
	}
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// WithSiteFile reads the site identity from path instead of the embedded default.
// SITE_CONFIG_FILE wins over this option.
func WithSiteFile(path string) Option {
	return func(o *loaderOptions) {
		o.siteFile = path
	}
}

// Load assembles the configuration by combining defaults, .env overrides,
// environment variables and the site identity document.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		fs:           afero.NewOsFs(),
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.fs, options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	port := stringWithDefault(lookup, "PORT", defaultPort)
	cfg := Config{
		Server: ServerConfig{
			Address:      stringWithDefault(lookup, "SITE_HTTP_ADDR", ":"+port),
			Environment:  strings.ToLower(stringWithDefault(lookup, "SITE_ENVIRONMENT", defaultEnvironment)),
			Dev:          boolWithDefault(lookup, "SITE_DEV", false),
			ReadTimeout:  durationWithDefault(lookup, "SITE_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "SITE_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "SITE_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
		},
	}

	siteFile := stringWithDefault(lookup, "SITE_CONFIG_FILE", options.siteFile)
	site, err := loadSite(ctx, options.fs, siteFile)
	if err != nil {
		return Config{}, err
	}
	if override := stringWithDefault(lookup, "SITE_URL", ""); override != "" {
		site.URL = override
	}
	site.URL = strings.TrimRight(strings.TrimSpace(site.URL), "/")
	if override := stringWithDefault(lookup, "SITE_BASE_PATH", ""); override != "" {
		site.BaseURL = override
	}
	site.BaseURL = normalizeBaseURL(site.BaseURL)
	cfg.Site = site
	cfg.Server.BasePath = basePath(site.BaseURL)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseSite decodes a site identity document.
func ParseSite(data []byte) (SiteConfig, error) {
	var site SiteConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return SiteConfig{}, fmt.Errorf("config: parse site file: %w", err)
	}
	site.Title = strings.TrimSpace(site.Title)
	site.Tagline = strings.TrimSpace(site.Tagline)
	return site, nil
}

func loadSite(ctx context.Context, fsys afero.Fs, path string) (SiteConfig, error) {
	if err := ctx.Err(); err != nil {
		return SiteConfig{}, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return ParseSite(defaultSiteFile)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("config: read site file %s: %w", path, err)
	}
	return ParseSite(data)
}

func validateConfig(cfg Config) error {
	var missing []string

	if strings.TrimSpace(cfg.Server.Address) == "" {
		missing = append(missing, "Server.Address")
	}
	if cfg.Server.ReadTimeout <= 0 {
		missing = append(missing, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		missing = append(missing, "Server.WriteTimeout")
	}
	if cfg.Server.IdleTimeout <= 0 {
		missing = append(missing, "Server.IdleTimeout")
	}
	if cfg.Site.Title == "" {
		missing = append(missing, "Site.Title")
	}
	if cfg.Site.URL != "" {
		u, err := url.Parse(cfg.Site.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			missing = append(missing, "Site.URL")
		}
	}
	for i, item := range cfg.Site.Navbar {
		if strings.TrimSpace(item.Href) == "" {
			missing = append(missing, fmt.Sprintf("Site.Navbar[%d].Href", i))
		}
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func normalizeBaseURL(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// basePath turns a base URL ("/x/") into a router mount path ("/x").
func basePath(baseURL string) string {
	if baseURL == "/" {
		return defaultBasePath
	}
	return strings.TrimRight(baseURL, "/")
}

func loadDotEnv(fsys afero.Fs, path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath := path
	if _, ok := fsys.(*afero.OsFs); ok {
		if abs, err := filepath.Abs(path); err == nil {
			absPath = abs
		}
	}

	file, err := fsys.Open(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(parts[1]), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
