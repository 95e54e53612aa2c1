package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntValidator(t *testing.T) {
	vdt := IntRangeValidator(10, 100)
	require.Contains(t, vdt(9).Error(), "may not be less than 10")
	require.Contains(t, vdt(101).Error(), "may not be more than 100")

	require.Nil(t, vdt(10))
	require.Nil(t, vdt(100))
	require.Nil(t, vdt(50))
}

func TestNegativeVersion(t *testing.T) {
	// Decoding accepts it; the repository layer rejects the version later.
	cfg, err := Decode(strings.NewReader("[core]\nrepositoryformatversion = -1\n"))
	require.Nil(t, err)
	require.Equal(t, -1, cfg.Core.RepositoryFormatVersion)

	require.NotNil(t, cfg.Set("core.repositoryformatversion", "-3"))
	require.Equal(t, -1, cfg.Core.RepositoryFormatVersion)

	require.Nil(t, cfg.Set("core.repositoryformatversion", "0"))
	require.Equal(t, 0, cfg.Core.RepositoryFormatVersion)
}
