package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withBuildVars(t *testing.T, major, minor, patch, release, rev string, fn func()) {
	old := []string{Major, Minor, Patch, ReleaseType, GitRev}
	defer func() {
		Major, Minor, Patch, ReleaseType, GitRev = old[0], old[1], old[2], old[3], old[4]
	}()

	Major, Minor, Patch, ReleaseType, GitRev = major, minor, patch, release, rev
	fn()
}

func TestDefault(t *testing.T) {
	rel, err := Current()
	require.Nil(t, err)
	require.Equal(t, 0, rel.Major)
	require.Equal(t, 1, rel.Minor)
	require.Equal(t, 0, rel.Patch)
}

func TestString(t *testing.T) {
	withBuildVars(t, "2", "10", "3", "", "", func() {
		require.Equal(t, "v2.10.3", String())
	})

	withBuildVars(t, "0", "1", "0", "beta", "0123456789abcdef", func() {
		require.Equal(t, "v0.1.0-beta+0123456", String())
	})

	// Too short revisions are left out:
	withBuildVars(t, "1", "0", "0", "", "abc", func() {
		require.Equal(t, "v1.0.0", String())
	})
}

func TestEmptyNumbers(t *testing.T) {
	withBuildVars(t, "", "", "7", "", "", func() {
		rel, err := Current()
		require.Nil(t, err)
		require.Equal(t, Release{Patch: 7}, rel)
	})
}

func TestBadNumbers(t *testing.T) {
	withBuildVars(t, "1", "x", "0", "", "", func() {
		_, err := Current()
		require.NotNil(t, err)
		require.Equal(t, "v1.x.0 (unparsable)", String())
	})
}
