package checker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/opsprobe/check-domain/internal/cache"
	"github.com/opsprobe/check-domain/internal/plugin"
	"github.com/opsprobe/check-domain/internal/rdap"
)

// DomainChecker resolves a domain's registration expiration, preferring the
// local cache over a live RDAP lookup.
type DomainChecker struct {
	cache  *cache.Store
	client *rdap.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewDomainChecker(store *cache.Store, client *rdap.Client, logger *zap.Logger) *DomainChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DomainChecker{
		cache:  store,
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Expiration returns the raw expiration timestamp string for domain. A fresh
// cache entry short-circuits the network entirely; otherwise the RDAP result
// is cached for the next invocation.
func (c *DomainChecker) Expiration(ctx context.Context, domain string) (string, error) {
	if value, ok := c.cache.Load(domain); ok {
		return value, nil
	}

	value, err := c.client.FetchExpiration(ctx, domain)
	if err != nil {
		return "", err
	}

	if err := c.cache.Save(domain, value); err != nil {
		// A read-only cache dir must not fail the check.
		c.logger.Warn("cache save failed", zap.String("domain", domain), zap.Error(err))
	}
	return value, nil
}

// Run performs the whole check and renders the status line body. Every
// failure comes back as StatusUnknown; the caller owns process exit.
func (c *DomainChecker) Run(ctx context.Context, domain string, warningDays, criticalDays int) (plugin.Status, string) {
	raw, err := c.Expiration(ctx, domain)
	if err != nil {
		if errors.Is(err, rdap.ErrNoExpiration) {
			return plugin.StatusUnknown, fmt.Sprintf("Expiry date not found for %s", domain)
		}
		return plugin.StatusUnknown, fmt.Sprintf("Error fetching RDAP data: %v", err)
	}

	expiresAt, err := ParseExpirationDate(raw)
	if err != nil {
		return plugin.StatusUnknown, fmt.Sprintf("Invalid expiration date format: %s", raw)
	}

	status, daysLeft := Evaluate(expiresAt, c.now(), warningDays, criticalDays)
	if daysLeft < 0 {
		return status, fmt.Sprintf("Domain %s expired %d days ago (%s).", domain, -daysLeft, raw)
	}
	return status, fmt.Sprintf("Domain %s will expire in %d days (%s).", domain, daysLeft, raw)
}
