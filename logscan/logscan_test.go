package logscan

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindIPv4(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{`192.168.1.10 - - [10/Oct/2024:13:55:36] "GET / HTTP/1.1" 200`, "192.168.1.10", true},
		{`{"remote_addr": "10.0.0.254", "status": 404}`, "10.0.0.254", true},
		{"client=8.8.8.8 upstream=1.1.1.1", "8.8.8.8", true},
		{"no address here", "", false},
		{"version 1.2.3", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := FindIPv4(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FindIPv4(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestScan(t *testing.T) {
	input := strings.Join([]string{
		"10.0.0.1 GET /",
		"garbage line",
		"10.0.0.2 GET /a",
		"10.0.0.1 GET /b",
		"",
	}, "\n")

	var debug bytes.Buffer
	DebugLogger.SetOutput(&debug)
	t.Cleanup(func() { DebugLogger.SetOutput(io.Discard) })

	var got []string
	stats, err := Scan(strings.NewReader(input), func(ip string) {
		got = append(got, ip)
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []string{"10.0.0.1", "10.0.0.2", "10.0.0.1"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
	if stats != (Stats{Lines: 4, Matched: 3, Skipped: 1}) {
		t.Errorf("unexpected stats %+v", stats)
	}
	if !strings.Contains(debug.String(), `"garbage line"`) {
		t.Errorf("expected diagnostic for skipped line, got %q", debug.String())
	}
}

func TestScanLineTooLong(t *testing.T) {
	input := "1.2.3.4\n" + strings.Repeat("x", maxLineSize+1) + "\n"

	var n int
	stats, err := Scan(strings.NewReader(input), func(string) { n++ })
	if err == nil {
		t.Fatal("expected error for oversized line")
	}
	if n != 1 || stats.Matched != 1 {
		t.Errorf("expected the first line to be delivered, got n=%d stats=%+v", n, stats)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	content := "1.1.1.1 a\n2.2.2.2 b\nnothing\n1.1.1.1 c\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ips, stats, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(ips) != 3 || ips[0] != "1.1.1.1" || ips[1] != "2.2.2.2" || ips[2] != "1.1.1.1" {
		t.Errorf("unexpected tokens %v", ips)
	}
	if stats.Skipped != 1 {
		t.Errorf("expected 1 skipped line, got %d", stats.Skipped)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.log"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}

	var pe *fs.PathError
	if !errors.As(err, &pe) || pe.Op != "open" {
		t.Errorf("expected open PathError, got %v", err)
	}
}
