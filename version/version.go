// Package version tells which release of wyag is running.
// The variables below are meant to be set at build time with
// -ldflags "-X github.com/Worcrow/wyag/version.Major=1 ...".
package version

import (
	"fmt"
	"strconv"

	e "github.com/pkg/errors"
)

var (
	Major       = "0"
	Minor       = "1"
	Patch       = "0"
	ReleaseType = "" // "alpha", "beta" or "" for final releases
	GitRev      = ""
	BuildTime   = "" // ISO8601
)

// Release is the parsed form of the build variables.
type Release struct {
	Major, Minor, Patch int
	ReleaseType         string
	GitRev              string
}

// Current parses the build variables. Empty numbers count as zero.
func Current() (Release, error) {
	nums := [3]int{}
	for idx, raw := range []string{Major, Minor, Patch} {
		if raw == "" {
			continue
		}

		num, err := strconv.Atoi(raw)
		if err != nil {
			return Release{}, e.Wrapf(err, "bad version number %q", raw)
		}

		nums[idx] = num
	}

	return Release{
		Major:       nums[0],
		Minor:       nums[1],
		Patch:       nums[2],
		ReleaseType: ReleaseType,
		GitRev:      GitRev,
	}, nil
}

// String renders the release like v1.2.3-beta+abcdef0.
func (rel Release) String() string {
	s := fmt.Sprintf("v%d.%d.%d", rel.Major, rel.Minor, rel.Patch)
	if rel.ReleaseType != "" {
		s += "-" + rel.ReleaseType
	}

	if len(rel.GitRev) >= 7 {
		s += "+" + rel.GitRev[:7]
	}

	return s
}

// String returns the current version. Build variables that do not parse
// are shown as they are.
func String() string {
	rel, err := Current()
	if err != nil {
		return fmt.Sprintf("v%s.%s.%s (unparsable)", Major, Minor, Patch)
	}

	return rel.String()
}
