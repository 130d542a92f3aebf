package util

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

// Config is the gatekeeper base configuration
type Config struct {
	Server     Server     `yaml:"server"`
	Gatekeeper Gatekeeper `yaml:"gatekeeper"`
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr"`
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	LogPath       string `yaml:"logPath"`
}

type Gatekeeper struct {
	CacheTTLSeconds int `yaml:"cacheTTLSeconds"`

	// ResourceDenySuffixes is the hardening denylist: statements whose
	// resource name ends in one of these suffixes are stripped at
	// resolution time, before caching. The default covers internal
	// script-resource identifiers; the intended wider scope is pending
	// product clarification.
	ResourceDenySuffixes []string `yaml:"resourceDenySuffixes"`
}

// Load loads gatekeeper config from the given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		return err
	}

	return nil
}

// CacheTTL returns the configured cache staleness bound, defaulting to 120s.
func (g Gatekeeper) CacheTTL() time.Duration {
	if g.CacheTTLSeconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

// DenySuffixes returns the hardening denylist, defaulting to the internal
// script-resource suffix.
func (g Gatekeeper) DenySuffixes() []string {
	if len(g.ResourceDenySuffixes) == 0 {
		return []string{"_SCRIPT"}
	}
	return g.ResourceDenySuffixes
}
