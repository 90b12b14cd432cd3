package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/opsprobe/check-domain/internal/cache"
	"github.com/opsprobe/check-domain/internal/rdap"
)

// Config carries every parameter of a single check run. There is no config
// file and no environment layer: the command line is the whole surface.
type Config struct {
	Domain       string
	WarningDays  int
	CriticalDays int
	Timeout      time.Duration
	CacheDir     string
	CacheAge     time.Duration
	Verbose      bool
	ShowVersion  bool
}

// ErrNoDomain is returned when the required -d/--domain flag is absent.
var ErrNoDomain = errors.New("no domain name to check (use -d/--domain)")

// DefaultCacheDir is the platform temp dir equivalent of /tmp/check_domain_cache.
func DefaultCacheDir() string {
	return filepath.Join(os.TempDir(), "check_domain_cache")
}

// Parse reads args (without the program name) into a Config. A help request
// surfaces as pflag.ErrHelp; when ShowVersion is set the domain requirement
// is waived.
func Parse(name string, args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&cfg.Domain, "domain", "d", "", "domain name to check")
	fs.IntVarP(&cfg.WarningDays, "warning", "w", 30, "warning threshold in days")
	fs.IntVarP(&cfg.CriticalDays, "critical", "c", 10, "critical threshold in days")
	fs.DurationVar(&cfg.Timeout, "timeout", rdap.DefaultTimeout, "RDAP request timeout")
	fs.StringVar(&cfg.CacheDir, "cache-dir", DefaultCacheDir(), "directory for cached expiration dates")
	fs.DurationVar(&cfg.CacheAge, "cache-age", cache.DefaultMaxAge, "maximum age of a cached expiration date")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	fs.BoolVarP(&cfg.ShowVersion, "version", "V", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if cfg.Domain == "" {
		return nil, ErrNoDomain
	}
	return cfg, nil
}
