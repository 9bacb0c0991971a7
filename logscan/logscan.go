// Package logscan pulls IPv4-shaped tokens out of log lines.
package logscan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

// maxLineSize bounds a single log line.
const maxLineSize = 1 << 20

// ipv4Pattern matches dotted quads. Octets are not range-checked, so
// "999.1.1.1" is accepted as a token.
var ipv4Pattern = regexp.MustCompile(`\b\d{1,3}(\.\d{1,3}){3}\b`)

// Stats summarises a scan.
type Stats struct {
	Lines   int // lines read
	Matched int // lines that produced a token
	Skipped int // lines without a token
}

// FindIPv4 returns the first IPv4-shaped token in line.
func FindIPv4(line string) (string, bool) {
	loc := ipv4Pattern.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return line[loc[0]:loc[1]], true
}

// Scan reads r line by line and calls fn with the first IPv4-shaped token of
// each line. Lines without a token are skipped and reported to DebugLogger.
func Scan(r io.Reader, fn func(ip string)) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()

		ip, ok := FindIPv4(line)
		if !ok {
			stats.Skipped++
			DebugLogger.Printf("no IP address in line %d: %q", stats.Lines, line)
			continue
		}
		stats.Matched++
		fn(ip)
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("logscan: line %d: %w", stats.Lines+1, err)
	}

	return stats, nil
}

// ReadFile scans the file at path and returns its tokens in order.
func ReadFile(path string) ([]string, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer file.Close()

	var ips []string
	stats, err := Scan(file, func(ip string) {
		ips = append(ips, ip)
	})
	if err != nil {
		return ips, stats, fmt.Errorf("%s: %w", path, err)
	}

	InfoLogger.Printf("%s: %d lines, %d addresses, %d skipped", path, stats.Lines, stats.Matched, stats.Skipped)
	return ips, stats, nil
}
