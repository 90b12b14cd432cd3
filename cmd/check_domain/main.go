// check_domain: monitoring plugin that checks a domain's registration
// expiration via RDAP. Exit codes: 0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/opsprobe/check-domain/internal/cache"
	"github.com/opsprobe/check-domain/internal/checker"
	"github.com/opsprobe/check-domain/internal/config"
	"github.com/opsprobe/check-domain/internal/plugin"
	"github.com/opsprobe/check-domain/internal/rdap"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is the single exit point: every outcome, including the UNKNOWN
// short-circuits raised by the components, becomes one status line on out
// and a returned exit code.
func run(args []string, out io.Writer) int {
	reporter := plugin.NewReporter(out)

	cfg, err := config.Parse("check_domain", args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return reporter.Report(plugin.StatusUnknown, "%s", err)
	}
	if cfg.ShowVersion {
		fmt.Fprintf(out, "check_domain v%s\n", version)
		return 0
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	store := cache.NewStore(cfg.CacheDir, cfg.CacheAge, logger)
	client := rdap.NewClient(rdap.DefaultBaseURL, cfg.Timeout, logger)
	check := checker.NewDomainChecker(store, client, logger)

	status, message := check.Run(context.Background(), cfg.Domain, cfg.WarningDays, cfg.CriticalDays)
	return reporter.Report(status, "%s", message)
}
