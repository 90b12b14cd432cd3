package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultMaxAge is how long a cached expiration date stays usable before a
// fresh lookup is forced.
const DefaultMaxAge = 8 * time.Hour

// Store keeps one plain-text file per domain under dir, each holding the raw
// expiration timestamp string. The file's mtime doubles as the entry's write
// time, so no extra metadata is kept.
type Store struct {
	dir    string
	maxAge time.Duration
	logger *zap.Logger
}

func NewStore(dir string, maxAge time.Duration, logger *zap.Logger) *Store {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, maxAge: maxAge, logger: logger}
}

// Load returns the cached value for domain if an entry exists, is non-empty,
// and is still inside the freshness window.
func (s *Store) Load(domain string) (string, bool) {
	path := s.path(domain)
	st, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if age := time.Since(st.ModTime()); age >= s.maxAge {
		s.logger.Debug("cache entry stale",
			zap.String("domain", domain),
			zap.Duration("age", age))
		return "", false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(b))
	if value == "" {
		return "", false
	}
	s.logger.Debug("cache hit", zap.String("domain", domain), zap.String("value", value))
	return value, true
}

// Save overwrites the entry for domain, creating the cache directory if
// needed. The write goes through a temp file and a rename so a concurrent
// reader never sees a torn entry.
func (s *Store) Save(domain, value string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	path := s.path(domain)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

func (s *Store) path(domain string) string {
	return filepath.Join(s.dir, sanitizeKey(domain)+".cache")
}

// sanitizeKey maps a domain onto a safe filename. Anything outside the
// hostname alphabet becomes '_', so a crafted domain cannot point the entry
// outside the cache directory.
func sanitizeKey(domain string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		default:
			return '_'
		}
	}, domain)
}
