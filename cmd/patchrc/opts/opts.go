// Package opts carries the shared dependencies for patchrc commands.
package opts

import (
	"context"

	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/patchset"
	"github.com/walteh/patchrc/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// 🔧 RootOpts holds the flags and helpers shared by all commands
type RootOpts struct {
	// ConfigFile is the patch configuration path
	ConfigFile string
	// Debug enables debug logging
	Debug bool
	// Only restricts the run to transforms whose ids match this glob
	Only string
	// DryRun reports what would change without writing
	DryRun bool
	// UserLogger prints user-facing feedback
	UserLogger *report.UserLogger
}

// 📦 LoadPatchSet loads the config and compiles it into a patch set,
// applying the --only selection when set.
func (o *RootOpts) LoadPatchSet(ctx context.Context) (*config.PatchrcConfig, *patchset.PatchSet, error) {
	cfg, err := config.LoadConfig(ctx, o.ConfigFile)
	if err != nil {
		return nil, nil, errors.Errorf("loading config: %w", err)
	}

	ps, err := cfg.BuildPatchSet()
	if err != nil {
		return nil, nil, errors.Errorf("building patch set: %w", err)
	}

	if o.Only != "" {
		ps, err = ps.Select(o.Only)
		if err != nil {
			return nil, nil, errors.Errorf("selecting patches: %w", err)
		}
		if ps.Len() == 0 {
			return nil, nil, errors.Errorf("no patches match %q", o.Only)
		}
	}

	return cfg, ps, nil
}
