// Command ipcount compares an exact distinct count of the IP addresses in a
// log file with a HyperLogLog estimate.
//
//	ipcount [-error-rate 0.01] [-v] [logfile]
//
// Without a logfile argument the path is read from standard input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jcalabro/sketchkit/compare"
	"github.com/jcalabro/sketchkit/logscan"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ipcount: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("ipcount", flag.ContinueOnError)
	errorRate := flags.Float64("error-rate", compare.DefaultErrorRate, "HyperLogLog target error rate, in (0, 1)")
	verbose := flags.Bool("v", false, "log lines without an IP address")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *verbose {
		logscan.InfoLogger.SetOutput(os.Stderr)
		logscan.DebugLogger.SetOutput(os.Stderr)
	}

	path := flags.Arg(0)
	if path == "" {
		var err error
		if path, err = promptPath(stdin, stdout); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Loading data from %s\n", path)
	ips, stats, err := logscan.ReadFile(path)
	if err != nil {
		return err
	}
	if len(ips) == 0 {
		fmt.Fprintf(stdout, "No IP addresses found in %s (%d lines)\n", path, stats.Lines)
		return nil
	}
	fmt.Fprintf(stdout, "Loaded %d IP addresses (%d lines skipped)\n", len(ips), stats.Skipped)

	res, err := compare.Run(ips, *errorRate)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "\nComparison:")
	return res.WriteTable(stdout)
}

// promptPath asks for a log file path until an existing regular file is
// named.
func promptPath(stdin io.Reader, stdout io.Writer) (string, error) {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "Path to log file: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", errors.New("no log file given")
		}

		path := strings.TrimSpace(scanner.Text())
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
		fmt.Fprintln(stdout, "File not found, try again.")
	}
}
