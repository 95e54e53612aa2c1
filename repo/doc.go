// Package repo offers functions for creating and opening a repository.
//
// The repository looks like this:
//
// /path/to/worktree
// └── .git
//     ├── description
//     ├── HEAD
//     ├── config
//     ├── branches/
//     ├── objects/
//     └── refs/
//         ├── heads/
//         └── tags/
//
// `Init` creates this layout once, `Open` checks it on every later use.
// The `Repository` structure resolves every path inside `.git` so that
// higher layers (objects, refs) never build metadata paths on their own.
package repo
