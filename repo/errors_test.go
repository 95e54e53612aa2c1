package repo

import (
	"errors"
	"fmt"
	"testing"

	e "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := errRepositoryNotEmpty("/tmp/repo/.git")
	require.Equal(t, RepositoryNotEmpty, KindOf(err))
	require.Equal(t, RepositoryNotEmpty, KindOf(e.Wrap(err, "init")))
	require.Equal(t, RepositoryNotEmpty, KindOf(fmt.Errorf("cmd: %w", err)))

	require.Equal(t, Unknown, KindOf(nil))
	require.Equal(t, Unknown, KindOf(errors.New("other")))
}

func TestErrorIs(t *testing.T) {
	err := e.Wrap(errNotAGitRepository("/x/.git"), "open")
	require.True(t, errors.Is(err, &Error{Kind: NotAGitRepository}))
	require.False(t, errors.Is(err, &Error{Kind: ConfigMissing}))
}

func TestErrorMessages(t *testing.T) {
	require.Equal(
		t,
		"unsupported repository format version: 1",
		errUnsupportedVersion(1).Error(),
	)

	require.Equal(
		t,
		"not a directory: /x",
		errNotADirectory("/x").Error(),
	)

	reason := errors.New("unclosed section")
	err := errConfigUnreadable("/x/.git/config", reason)
	require.Equal(
		t,
		"configuration file unreadable: /x/.git/config: unclosed section",
		err.Error(),
	)
	require.True(t, errors.Is(err, reason))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "repository not empty", RepositoryNotEmpty.String())
	require.Equal(t, "kind(42)", Kind(42).String())
}
