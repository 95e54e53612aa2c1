package repo

import (
	"fmt"

	e "github.com/pkg/errors"
)

// Kind tells what went wrong when creating or opening a repository.
type Kind int

const (
	// Unknown is returned by KindOf for errors not raised by this package.
	Unknown Kind = iota
	// NotADirectory means a path exists but is a regular file (or similar).
	NotADirectory
	// NotAGitRepository means the metadata directory is missing.
	NotAGitRepository
	// ConfigMissing means there is no config file in the metadata directory.
	ConfigMissing
	// ConfigUnreadable means the config file could not be parsed.
	ConfigUnreadable
	// UnsupportedVersion means the config declares a layout we do not know.
	UnsupportedVersion
	// RepositoryNotEmpty means init was asked to reuse a populated metadata dir.
	RepositoryNotEmpty
)

var kindNames = map[Kind]string{
	Unknown:            "unknown",
	NotADirectory:      "not a directory",
	NotAGitRepository:  "not a git repository",
	ConfigMissing:      "configuration file missing",
	ConfigUnreadable:   "configuration file unreadable",
	UnsupportedVersion: "unsupported repository format version",
	RepositoryNotEmpty: "repository not empty",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the only error type the layout manager raises on its own.
// Callers should switch on Kind instead of matching messages.
type Error struct {
	Kind Kind

	// Path is the offending path. Empty for UnsupportedVersion.
	Path string

	// Version is the format version found in the config.
	// Only set for UnsupportedVersion.
	Version int

	// Err is the underlying reason for ConfigUnreadable.
	Err error
}

func (err *Error) Error() string {
	switch err.Kind {
	case UnsupportedVersion:
		return fmt.Sprintf("%s: %d", err.Kind, err.Version)
	case ConfigUnreadable:
		if err.Err != nil {
			return fmt.Sprintf("%s: %s: %v", err.Kind, err.Path, err.Err)
		}
	}

	return fmt.Sprintf("%s: %s", err.Kind, err.Path)
}

// Unwrap returns the parse error behind ConfigUnreadable, if any.
func (err *Error) Unwrap() error {
	return err.Err
}

// Is makes errors.Is(err, &Error{Kind: k}) match on the kind alone.
func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return other.Kind == err.Kind
}

// KindOf digs through any wrapping and returns the kind of `err`.
// Errors that did not originate here yield Unknown.
func KindOf(err error) Kind {
	var rerr *Error
	if e.As(err, &rerr) {
		return rerr.Kind
	}

	return Unknown
}

func errNotADirectory(path string) error {
	return &Error{Kind: NotADirectory, Path: path}
}

func errNotAGitRepository(path string) error {
	return &Error{Kind: NotAGitRepository, Path: path}
}

func errConfigMissing(path string) error {
	return &Error{Kind: ConfigMissing, Path: path}
}

func errConfigUnreadable(path string, reason error) error {
	return &Error{Kind: ConfigUnreadable, Path: path, Err: reason}
}

func errUnsupportedVersion(found int) error {
	return &Error{Kind: UnsupportedVersion, Version: found}
}

func errRepositoryNotEmpty(path string) error {
	return &Error{Kind: RepositoryNotEmpty, Path: path}
}
