// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package fmtp implements parsing and comparison of fmtp parameter lines
package fmtp

import (
	"sort"
	"strings"
)

// Parameters holds the key/value pairs of an fmtp line. Keys are lower case.
type Parameters map[string]string

// Parse parses a semicolon separated fmtp parameter line.
func Parse(line string) Parameters {
	parameters := make(Parameters)

	for _, p := range strings.Split(line, ";") {
		pp := strings.SplitN(strings.TrimSpace(p), "=", 2)
		if pp[0] == "" {
			continue
		}
		key := strings.ToLower(pp[0])
		var value string
		if len(pp) > 1 {
			value = pp[1]
		}
		parameters[key] = value
	}

	return parameters
}

// Parameter returns the value for key, which is matched case-insensitively.
func (p Parameters) Parameter(key string) (string, bool) {
	v, ok := p[strings.ToLower(key)]

	return v, ok
}

// Equivalent reports whether two fmtp lines carry the same set of
// parameters. The order of the parameters and whitespace around them are
// not significant, everything else is compared exactly.
func Equivalent(want, got string) bool {
	wantSplit := splitTrimmed(want)
	gotSplit := splitTrimmed(got)

	if len(wantSplit) != len(gotSplit) {
		return false
	}

	sort.Strings(wantSplit)
	sort.Strings(gotSplit)

	for i := range wantSplit {
		if wantSplit[i] != gotSplit[i] {
			return false
		}
	}

	return true
}

func splitTrimmed(line string) []string {
	parts := strings.Split(line, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
