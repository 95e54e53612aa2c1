package defaults

import (
	"bytes"
	"testing"

	"github.com/Worcrow/wyag/config"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cfg := Config()
	require.Equal(t, config.Core{
		RepositoryFormatVersion: 0,
		FileMode:                false,
		Bare:                    false,
	}, cfg.Core)

	require.Equal(t, []string{
		"core.bare",
		"core.filemode",
		"core.repositoryformatversion",
	}, cfg.Keys())
}

func TestConfigIsFresh(t *testing.T) {
	a := Config()
	a.Core.Bare = true
	require.Nil(t, a.Set("user.name", "alice"))

	b := Config()
	require.False(t, b.Core.Bare)

	_, ok := b.Get("user.name")
	require.False(t, ok)
}

func TestConfigRoundtrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.Nil(t, Config().Encode(buf))
	require.Contains(t, buf.String(), "[core]")
	require.Contains(t, buf.String(), "repositoryformatversion = 0")

	cfg, err := config.Decode(buf)
	require.Nil(t, err)
	require.Equal(t, Config().Core, cfg.Core)
	require.Equal(t, Config().Keys(), cfg.Keys())
}

func TestHead(t *testing.T) {
	require.Equal(t, "ref: refs/heads/main\n", Head(Branch))
}
