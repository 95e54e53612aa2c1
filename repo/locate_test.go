package repo

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestIsRepo(t *testing.T) {
	fs, _ := initMemRepo(t)

	require.True(t, IsRepo(fs, "/tmp/repo"))
	require.False(t, IsRepo(fs, "/tmp"))
	require.False(t, IsRepo(fs, "/tmp/repo/.git"))
}

func TestIsRepoMetaDirIsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "/tmp/repo/.git", []byte("x"), 0644))
	require.False(t, IsRepo(fs, "/tmp/repo"))
}

func TestFindRepo(t *testing.T) {
	fs, _ := initMemRepo(t)
	require.Nil(t, fs.MkdirAll("/tmp/repo/src/pkg/deep", 0755))

	require.Equal(t, "/tmp/repo", FindRepo(fs, "/tmp/repo"))
	require.Equal(t, "/tmp/repo", FindRepo(fs, "/tmp/repo/src/pkg/deep"))
	require.Equal(t, "/tmp/repo", FindRepo(fs, "/tmp/repo/.git/refs"))
	require.Equal(t, "", FindRepo(fs, "/tmp"))
	require.Equal(t, "", FindRepo(fs, "/"))
}

func TestFindRepoNested(t *testing.T) {
	fs, _ := initMemRepo(t)

	_, err := Init("/tmp/repo/vendor/lib", FileSystem(fs))
	require.Nil(t, err)

	require.Equal(t, "/tmp/repo/vendor/lib", FindRepo(fs, "/tmp/repo/vendor/lib"))
	require.Equal(t, "/tmp/repo", FindRepo(fs, "/tmp/repo/vendor"))
}
