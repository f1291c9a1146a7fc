package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlan_Fortnox(t *testing.T) {
	out, err := run(t, "plan", "--provider", "fortnox", "--jobs", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "provider fortnox: 300 calls/min, spacing 220ms")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"0", "0s"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1", "220ms"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2", "440ms"}, strings.Fields(lines[4]))
}

func TestPlan_RejectsZeroJobs(t *testing.T) {
	_, err := run(t, "plan", "--jobs", "0")
	assert.Error(t, err)
}

func TestLimits_Defaults(t *testing.T) {
	out, err := run(t, "limits")
	require.NoError(t, err)

	assert.Contains(t, out, "PROVIDER")
	for _, p := range []string{"xero", "quickbooks", "fortnox", "sandbox"} {
		assert.Contains(t, out, p)
	}
}

func TestLimits_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("providers:\n  xero:\n    max_concurrent: 2\n    call_delay_ms: 1500\n"), 0o644))

	out, err := run(t, "limits", "--file", path)
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "xero") {
			assert.Equal(t, []string{"xero", "2", "1.5s", "3", "4"}, strings.Fields(line))
			return
		}
	}
	t.Fatal("xero row missing")
}

func TestLimits_MissingFile(t *testing.T) {
	_, err := run(t, "limits", "--file", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRecords_RequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := run(t, "records", "--team", "team-1", "--provider", "xero")
	assert.Error(t, err)
}

func TestRecords_RejectsUnknownStatus(t *testing.T) {
	_, err := run(t, "records", "--dsn", "postgres://localhost/none", "--team", "team-1", "--provider", "xero", "--status", "pending")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--status")
}
