// Command passcheck reports whether candidate passwords were seen before,
// keeping the set of seen passwords in a bloom filter state file.
//
//	passcheck -state seen.bin -save password123 newpassword
//	cat candidates.txt | passcheck -state seen.bin
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/jcalabro/sketchkit/bloom"
	"github.com/jcalabro/sketchkit/password"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("passcheck: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("passcheck", flag.ContinueOnError)
	size := flags.Uint64("size", 1000, "filter size in bits")
	hashes := flags.Uint("hashes", 3, "number of hash probes per password")
	minLength := flags.Int("min-length", password.DefaultMinLength, "minimum password length in characters")
	hasherName := flags.String("hasher", bloom.XXH3.Name(), "probe hasher: xxh3 or murmur3")
	state := flags.String("state", "", "bloom filter state file to load (and write with -save)")
	save := flags.Bool("save", false, "write the updated filter back to -state")
	verbose := flags.Bool("v", false, "verbose logging")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *save && *state == "" {
		return errors.New("-save requires -state")
	}

	hasher, ok := bloom.HasherByName(*hasherName)
	if !ok {
		return fmt.Errorf("unknown hasher %q", *hasherName)
	}

	filter, err := bloom.New(*size, uint32(*hashes), bloom.WithHasher(hasher))
	if err != nil {
		return err
	}

	if *state != "" {
		if err := loadState(filter, *state, *verbose); err != nil {
			return err
		}
	}

	candidates := flags.Args()
	if len(candidates) == 0 {
		candidates, err = readLines(stdin)
		if err != nil {
			return err
		}
	}

	checker := password.NewChecker(filter, *minLength)
	for _, res := range checker.CheckAll(candidates) {
		if _, err := fmt.Fprintf(stdout, "%q: %s\n", res.Password, res.Status); err != nil {
			return err
		}
	}

	if *save {
		if err := filter.SaveFile(*state); err != nil {
			return err
		}
		if *verbose {
			log.Printf("saved %d bits to %s (fill ratio %.4f)", filter.Cap(), *state, filter.EstimatedFillRatio())
		}
	}
	return nil
}

// loadState restores filter from path. A missing file leaves the filter
// empty.
func loadState(filter *bloom.Filter, path string, verbose bool) error {
	err := filter.LoadFile(path)
	switch {
	case err == nil:
		if verbose {
			log.Printf("loaded %s (fill ratio %.4f)", path, filter.EstimatedFillRatio())
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if verbose {
			log.Printf("%s does not exist, starting with an empty filter", path)
		}
		return nil
	}
	return err
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
