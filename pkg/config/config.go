// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"path/filepath"

	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/patchset"
	"gitlab.com/tozd/go/errors"
)

// 🔍 MatchDefinition declares how a patch locates the prior text
type MatchDefinition struct {
	Literal    string `json:"literal,omitempty" yaml:"literal,omitempty" hcl:"literal,optional"`
	Regex      string `json:"regex,omitempty" yaml:"regex,omitempty" hcl:"regex,optional"`
	ReplaceAll bool   `json:"replace_all,omitempty" yaml:"replace_all,omitempty" hcl:"replace_all,optional"`
}

// 🔄 PatchDefinition declares one transform
type PatchDefinition struct {
	ID          string          `json:"id" yaml:"id" hcl:"id,label"`
	File        string          `json:"file" yaml:"file" hcl:"file"`
	Match       MatchDefinition `json:"match" yaml:"match" hcl:"match,block"`
	Replace     string          `json:"replace" yaml:"replace" hcl:"replace"`
	AppliedWhen string          `json:"applied_when,omitempty" yaml:"applied_when,omitempty" hcl:"applied_when,optional"`
	After       []string        `json:"after,omitempty" yaml:"after,omitempty" hcl:"after,optional"`
}

// 📚 PatchrcConfig is the complete patch configuration
type PatchrcConfig struct {
	// Root is the base directory for relative file paths. Relative roots are
	// resolved against the config file's own directory.
	Root    string            `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	Patches []PatchDefinition `json:"patches" yaml:"patches" hcl:"patch,block"`

	location string // path the config was loaded from
}

// 📍 Location returns the path the config was loaded from, if any
func (cfg *PatchrcConfig) Location() string {
	return cfg.location
}

// 📂 ResolveRoot returns the base directory for relative target paths
func (cfg *PatchrcConfig) ResolveRoot() string {
	if cfg.Root == "" || filepath.IsAbs(cfg.Root) || cfg.location == "" {
		return cfg.Root
	}
	return filepath.Join(filepath.Dir(cfg.location), cfg.Root)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *PatchrcConfig) Validate() error {
	if len(cfg.Patches) == 0 {
		return errors.Errorf("at least one patch is required")
	}

	seen := map[string]bool{}
	for i, def := range cfg.Patches {
		if def.ID == "" {
			return errors.Errorf("patch %d: id is required", i)
		}
		if seen[def.ID] {
			return errors.Errorf("patch %q: duplicate id", def.ID)
		}
		seen[def.ID] = true
		if def.File == "" {
			return errors.Errorf("patch %q: file is required", def.ID)
		}
		if def.Match.Literal == "" && def.Match.Regex == "" {
			return errors.Errorf("patch %q: match.literal or match.regex is required", def.ID)
		}
		if def.Match.Literal != "" && def.Match.Regex != "" {
			return errors.Errorf("patch %q: match.literal and match.regex are mutually exclusive", def.ID)
		}
	}
	return nil
}

// spec compiles the match definition, failing fast on a bad regex
func (m MatchDefinition) spec() (patch.MatchSpec, error) {
	if m.Regex != "" {
		return patch.NewRegexSpec(m.Regex, m.ReplaceAll)
	}
	return patch.NewLiteralSpec(m.Literal, m.ReplaceAll)
}

// 🏗️ BuildPatchSet compiles the configuration into an executable patch set.
// Every configuration-time error (bad regex, unknown dependency, cycle)
// surfaces here, before any target file is touched.
func (cfg *PatchrcConfig) BuildPatchSet() (*patchset.PatchSet, error) {
	ps := patchset.New()
	for _, def := range cfg.Patches {
		spec, err := def.Match.spec()
		if err != nil {
			return nil, errors.Errorf("patch %q: %w", def.ID, err)
		}
		t, err := patch.New(patch.Options{
			ID:          def.ID,
			TargetPath:  def.File,
			Spec:        spec,
			Replacement: def.Replace,
			AppliedWhen: def.AppliedWhen,
		})
		if err != nil {
			return nil, errors.Errorf("building patch: %w", err)
		}
		if err := ps.Add(t, def.After...); err != nil {
			return nil, errors.Errorf("adding patch: %w", err)
		}
	}
	if _, err := ps.ResolveOrder(); err != nil {
		return nil, err
	}
	return ps, nil
}
