// Package version compares release versions and checks for newer releases.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// parse reads "v1.2.3" or "1.2.3-rc1" into its numeric core and pre-release suffix.
func parse(s string) (core []int, pre string, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, pre, _ = strings.Cut(s, "-")

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return nil, "", fmt.Errorf("malformed version %q", s)
	}

	core = make([]int, len(parts))
	for i, p := range parts {
		if core[i], err = strconv.Atoi(p); err != nil {
			return nil, "", fmt.Errorf("malformed version %q: %w", s, err)
		}
	}

	return core, pre, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
// A pre-release is older than the release it precedes.
func Compare(a, b string) (int, error) {
	ac, apre, err := parse(a)
	if err != nil {
		return 0, err
	}

	bc, bpre, err := parse(b)
	if err != nil {
		return 0, err
	}

	if c := slices.Compare(ac, bc); c != 0 {
		return c, nil
	}

	switch {
	case apre == bpre:
		return 0, nil
	case apre == "":
		return 1, nil
	case bpre == "":
		return -1, nil
	default:
		return strings.Compare(apre, bpre), nil
	}
}
