// Package password checks candidate passwords for reuse against an
// approximate-membership set.
package password

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMinLength is the minimum accepted password length in characters.
const DefaultMinLength = 5

// Status is the outcome of checking a single candidate.
type Status int

const (
	// Invalid means the candidate is empty or only whitespace.
	Invalid Status = iota
	// TooShort means the candidate has fewer than the minimum characters.
	TooShort
	// AlreadyUsed means the set reports the candidate as seen before.
	AlreadyUsed
	// Unique means the candidate was not seen before. It has been added.
	Unique
)

func (s Status) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case TooShort:
		return "too short"
	case AlreadyUsed:
		return "already used"
	case Unique:
		return "unique"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Set is the membership structure consulted and updated by a Checker.
// *bloom.Filter satisfies it.
type Set interface {
	AddString(s string)
	ContainsString(s string) bool
}

// Checker classifies candidates and records every accepted one.
type Checker struct {
	set       Set
	minLength int
}

// NewChecker returns a Checker over set. A minLength below 1 is treated as 1.
func NewChecker(set Set, minLength int) *Checker {
	return &Checker{set: set, minLength: max(minLength, 1)}
}

// MinLength returns the minimum accepted length in characters.
func (c *Checker) MinLength() int {
	return c.minLength
}

// Check classifies candidate. A Unique candidate is added to the set, so a
// later Check of the same string reports AlreadyUsed.
func (c *Checker) Check(candidate string) Status {
	if strings.TrimSpace(candidate) == "" {
		return Invalid
	}
	if utf8.RuneCountInString(candidate) < c.minLength {
		return TooShort
	}
	if c.set.ContainsString(candidate) {
		return AlreadyUsed
	}
	c.set.AddString(candidate)
	return Unique
}

// Result pairs a candidate with its classification.
type Result struct {
	Password string
	Status   Status
}

// Results is the outcome of a batch, in input order.
type Results []Result

// CheckAll classifies candidates in order.
func (c *Checker) CheckAll(candidates []string) Results {
	out := make(Results, 0, len(candidates))
	for _, pw := range candidates {
		out = append(out, Result{Password: pw, Status: c.Check(pw)})
	}
	return out
}

// ByPassword collapses the results into a map. When a password occurs more
// than once, the status of its last occurrence wins.
func (r Results) ByPassword() map[string]Status {
	m := make(map[string]Status, len(r))
	for _, res := range r {
		m[res.Password] = res.Status
	}
	return m
}
