package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

func ExampleConfig() {
	// Everything in [core] that we know about is typed:
	cfg, err := Decode(strings.NewReader(`[core]
repositoryformatversion = 0
filemode = false
bare = false
`))
	if err != nil {
		log.Fatalf("failed to decode config: %v", err)
	}

	fmt.Println(cfg.Core.RepositoryFormatVersion, cfg.Core.Bare)

	// Other keys are plain strings and are kept on save:
	if err := cfg.Set("user.name", "alice"); err != nil {
		log.Fatalf("failed to set: %v", err)
	}

	// Typed keys get validated:
	if err := cfg.Set("core.bare", "perhaps"); err != nil {
		fmt.Println("rejected core.bare")
	}

	if err := cfg.Encode(os.Stdout); err != nil {
		log.Fatalf("failed to encode: %v", err)
	}

	// Output:
	// 0 false
	// rejected core.bare
	// [core]
	// 	repositoryformatversion = 0
	// 	filemode = false
	// 	bare = false
	//
	// [user]
	// 	name = alice
}
