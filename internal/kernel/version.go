package kernel

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SortNames orders kernel names in place: semantic versions first, oldest to
// newest, then any non-version names lexically. Equal versions spelled
// differently ("2.1" and "2.1.0") fall back to lexical order.
func SortNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return compareNames(names[i], names[j]) < 0
	})
}

// Latest returns the newest semantic version among names, or the lexically
// last name when none parse as versions.
func Latest(names []string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	sorted := append([]string(nil), names...)
	SortNames(sorted)
	for i := len(sorted) - 1; i >= 0; i-- {
		if _, ok := parseVersion(sorted[i]); ok {
			return sorted[i], true
		}
	}
	return sorted[len(sorted)-1], true
}

func compareNames(a string, b string) int {
	av, aok := parseVersion(a)
	bv, bok := parseVersion(b)
	switch {
	case aok && bok:
		if c := av.Compare(bv); c != 0 {
			return c
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

func parseVersion(name string) (*semver.Version, bool) {
	v, err := semver.NewVersion(name)
	if err != nil {
		return nil, false
	}
	return v, true
}
