package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lms-stage-access.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestRunWithArgument(t *testing.T) {
	var lines []string
	for i := range 3000 {
		x := i % 1000
		lines = append(lines, fmt.Sprintf(`{"remote_addr": "10.1.%d.%d", "status": 200}`, x/256, x%256))
	}
	lines = append(lines, "corrupted line")
	path := writeLog(t, lines...)

	var out bytes.Buffer
	require.NoError(t, run([]string{path}, nil, &out))

	s := out.String()
	require.Contains(t, s, "Loaded 3000 IP addresses (1 lines skipped)")
	require.Contains(t, s, "Exact count")
	require.Contains(t, s, "HyperLogLog")
	require.Regexp(t, `Unique elements\s+1000\s+`, s)
}

func TestRunPromptsForPath(t *testing.T) {
	path := writeLog(t, "1.2.3.4 GET /", "5.6.7.8 GET /")
	missing := filepath.Join(t.TempDir(), "missing.log")

	var out bytes.Buffer
	stdin := strings.NewReader(missing + "\n" + path + "\n")
	require.NoError(t, run(nil, stdin, &out))

	s := out.String()
	require.Equal(t, 2, strings.Count(s, "Path to log file: "))
	require.Contains(t, s, "File not found, try again.")
	require.Regexp(t, `Unique elements\s+2\s+2\s+`, s)
}

func TestRunNoAddresses(t *testing.T) {
	path := writeLog(t, "nothing", "to see")

	var out bytes.Buffer
	require.NoError(t, run([]string{path}, nil, &out))
	require.Contains(t, out.String(), "No IP addresses found")
}

func TestPromptPathEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := promptPath(strings.NewReader(""), &out)
	require.EqualError(t, err, "no log file given")
}

func TestRunInvalidErrorRate(t *testing.T) {
	path := writeLog(t, "1.2.3.4")

	var out bytes.Buffer
	require.Error(t, run([]string{"-error-rate", "2", path}, nil, &out))
}
