package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/patchrc/pkg/config"
)

func ExampleLoadConfig_yaml() {
	ctx := context.Background()
	// Create a temporary YAML config file
	configYAML := `
patches:
  - id: declare_module
    file: src/lib.rs
    match:
      literal: "pub mod process;"
    replace: "pub mod process;\npub mod adapters;"
  - id: register_module
    file: src/main.rs
    match:
      literal: "use app::process;"
    replace: "use app::process;\nuse app::adapters;"
    after: [declare_module]
`

	tmpDir, err := os.MkdirTemp("", "patchrc-example")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, ".patchrc.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load the config and compile it into an executable patch set
	cfg, err := config.LoadConfig(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	ps, err := cfg.BuildPatchSet()
	if err != nil {
		fmt.Printf("Error building patch set: %v\n", err)
		return
	}

	ordered, err := ps.ResolveOrder()
	if err != nil {
		fmt.Printf("Error resolving order: %v\n", err)
		return
	}

	fmt.Printf("Loaded %d patches\n", ps.Len())
	for _, t := range ordered {
		fmt.Printf("%s -> %s\n", t.ID(), t.TargetPath())
	}

	// Output:
	// Loaded 2 patches
	// declare_module -> src/lib.rs
	// register_module -> src/main.rs
}
