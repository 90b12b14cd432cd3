package plugin_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsprobe/check-domain/internal/plugin"
)

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OK", plugin.StatusOK.String())
	assert.Equal(t, "WARNING", plugin.StatusWarning.String())
	assert.Equal(t, "CRITICAL", plugin.StatusCritical.String())
	assert.Equal(t, "UNKNOWN", plugin.StatusUnknown.String())
}

func TestStatusExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, plugin.StatusOK.ExitCode())
	assert.Equal(t, 1, plugin.StatusWarning.ExitCode())
	assert.Equal(t, 2, plugin.StatusCritical.ExitCode())
	assert.Equal(t, 3, plugin.StatusUnknown.ExitCode())

	// Out-of-range values collapse to UNKNOWN rather than leaking an
	// unexpected exit code to the scheduler.
	assert.Equal(t, 3, plugin.Status(42).ExitCode())
	assert.Equal(t, 3, plugin.Status(-1).ExitCode())
}

func TestReporterWritesSingleStatusLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := plugin.NewReporter(&buf)

	code := r.Report(plugin.StatusCritical, "Domain %s expired %d days ago (%s).",
		"example.com", 5, "2025-01-01T00:00:00Z")

	require.Equal(t, 2, code)
	assert.Equal(t, "CRITICAL - Domain example.com expired 5 days ago (2025-01-01T00:00:00Z).\n", buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestReporterUnknownPrefix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := plugin.NewReporter(&buf)

	code := r.Report(plugin.StatusUnknown, "Expiry date not found for %s", "example.com")

	require.Equal(t, 3, code)
	assert.Equal(t, "UNKNOWN - Expiry date not found for example.com\n", buf.String())
}
