// Package defaults holds the values written into a freshly created repository.
package defaults

import (
	"github.com/Worcrow/wyag/config"
)

// CurrentVersion is the only repository format version we understand.
const CurrentVersion = 0

// Branch is the branch HEAD points to after init.
const Branch = "main"

// Description is the placeholder content of the description file.
const Description = "Unnamed repository; edit this file 'description' to name the repository.\n"

// Config returns a fresh default config. Every call returns a new value,
// so callers may modify it freely.
func Config() *config.Config {
	cfg := config.New()
	cfg.Core = config.Core{
		RepositoryFormatVersion: CurrentVersion,
		FileMode:                false,
		Bare:                    false,
	}

	return cfg
}

// Head returns the content of HEAD pointing at `branch`.
func Head(branch string) string {
	return "ref: refs/heads/" + branch + "\n"
}
