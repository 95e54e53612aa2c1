package cmd

const (
	// Success is the same as EXIT_SUCCESS in C
	Success = iota

	// BadArgs passed to cli; not our fault.
	BadArgs

	// NotARepository means the directory is no work tree, or its metadata
	// directory is missing or not a directory.
	NotARepository

	// BadConfig means the config of the repository is missing, unreadable
	// or declares a format version we do not understand.
	BadConfig

	// NotImplemented is returned by commands that are only reserved for now.
	NotImplemented

	// UnknownError is an uncategorized error, probably our fault.
	UnknownError
)
