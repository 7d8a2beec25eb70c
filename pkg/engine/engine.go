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

package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/patchset"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures an engine
type Options struct {
	// FS is the filesystem the engine reads and writes. Defaults to the OS.
	FS FileSystem
	// Root is an optional base directory resolved against relative target paths.
	Root string
	// DryRun runs the full matching pass without writing anything back.
	DryRun bool
}

// 🎮 Engine applies a patch set to the filesystem, one file session at a time
type Engine struct {
	fs     FileSystem
	root   string
	dryRun bool
}

// 🏭 New creates an engine with the given options
func New(opts Options) *Engine {
	fs := opts.FS
	if fs == nil {
		fs = NewOSFileSystem()
	}
	return &Engine{
		fs:     fs,
		root:   opts.Root,
		dryRun: opts.DryRun,
	}
}

// 🏃 Run applies ps in resolved dependency order and returns one result per
// transform. Configuration errors (unknown dependencies, cycles) abort before
// any file is read; per-file I/O failures are folded into the results so the
// rest of the run can proceed.
func (e *Engine) Run(ctx context.Context, ps *patchset.PatchSet) ([]patch.ApplyResult, error) {
	logger := zerolog.Ctx(ctx)

	ordered, err := ps.ResolveOrder()
	if err != nil {
		return nil, errors.Errorf("resolving transform order: %w", err)
	}
	logger.Debug().Int("transforms", len(ordered)).Bool("dry_run", e.dryRun).Msg("starting run")

	sessions := map[string]*fileSession{}
	var opened []string // session open order, for deterministic write-back
	results := make([]patch.ApplyResult, 0, len(ordered))

	for _, t := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("run cancelled: %w", err)
		}

		path := e.resolvePath(t.TargetPath())
		sess, ok := sessions[path]
		if !ok {
			sess = e.openSession(ctx, path)
			sessions[path] = sess
			opened = append(opened, path)
		}

		var res patch.ApplyResult
		if sess.readErr != nil {
			res = patch.ApplyResult{
				TransformID: t.ID(),
				Path:        t.TargetPath(),
				Outcome:     patch.OutcomeError,
				Detail:      sess.readErr.Error(),
			}
		} else {
			var newText string
			newText, res = t.Apply(sess.text)
			if res.Outcome == patch.OutcomeApplied {
				sess.text = newText
			}
		}

		sess.results = append(sess.results, len(results))
		results = append(results, res)
		logger.Debug().
			Str("transform", res.TransformID).
			Str("path", path).
			Stringer("outcome", res.Outcome).
			Msg(res.Detail)
	}

	e.flush(ctx, sessions, opened, results)
	return results, nil
}

// openSession reads the target file once; a failed read is remembered so every
// transform scoped to the file reports the same error.
func (e *Engine) openSession(ctx context.Context, path string) *fileSession {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("opening file session")

	text, err := e.fs.ReadText(ctx, path)
	if err != nil {
		return &fileSession{path: path, readErr: err}
	}
	return &fileSession{path: path, original: text, text: text}
}

// flush writes back every dirty session. A failed write downgrades each of
// that file's results to an error so the summary reflects what is on disk.
func (e *Engine) flush(ctx context.Context, sessions map[string]*fileSession, opened []string, results []patch.ApplyResult) {
	logger := zerolog.Ctx(ctx)

	for _, path := range opened {
		sess := sessions[path]
		if !sess.dirty() {
			continue
		}
		if e.dryRun {
			logger.Debug().Str("path", path).Msg("dry run, skipping write")
			continue
		}
		if err := e.fs.WriteText(ctx, path, sess.text); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("write failed")
			for _, i := range sess.results {
				results[i] = patch.ApplyResult{
					TransformID: results[i].TransformID,
					Path:        results[i].Path,
					Outcome:     patch.OutcomeError,
					Detail:      fmt.Sprintf("writing file: %v", err),
				}
			}
			continue
		}
		logger.Debug().Str("path", path).Msg("wrote file")
	}
}

// resolvePath joins relative target paths onto the configured root
func (e *Engine) resolvePath(target string) string {
	if e.root == "" || filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(e.root, target)
}
