// Package patchset provides the ordered, dependency-annotated collection of
// transforms that the engine executes.
package patchset

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/patchrc/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// 🧩 PatchSet is an ordered collection of transforms with "must follow" edges
type PatchSet struct {
	transforms []*patch.Transform
	index      map[string]int      // id -> declaration position
	after      map[string][]string // id -> ids it must run after
}

// 🏭 New creates an empty patch set
func New() *PatchSet {
	return &PatchSet{
		index: map[string]int{},
		after: map[string][]string{},
	}
}

// ➕ Add appends a transform, recording ids it must run after
func (ps *PatchSet) Add(t *patch.Transform, after ...string) error {
	if _, ok := ps.index[t.ID()]; ok {
		return errors.Errorf("duplicate transform id %q", t.ID())
	}
	ps.index[t.ID()] = len(ps.transforms)
	ps.transforms = append(ps.transforms, t)
	if len(after) > 0 {
		ps.after[t.ID()] = append(ps.after[t.ID()], after...)
	}
	return nil
}

// 🔢 Len returns the number of transforms
func (ps *PatchSet) Len() int { return len(ps.transforms) }

// 📜 Transforms returns the transforms in declaration order
func (ps *PatchSet) Transforms() []*patch.Transform {
	out := make([]*patch.Transform, len(ps.transforms))
	copy(out, ps.transforms)
	return out
}

// 🚨 CyclicDependencyError reports a dependency cycle between transform ids
type CyclicDependencyError struct {
	IDs []string
}

// 📝 Error lists the participating ids
func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency between transforms: %s", strings.Join(e.IDs, ", "))
}

// 🔀 ResolveOrder returns the transforms topologically sorted by their after
// edges, ties broken by declaration order. It fails on unknown dependency ids
// and on cycles, before any file is touched.
func (ps *PatchSet) ResolveOrder() ([]*patch.Transform, error) {
	indegree := make(map[string]int, len(ps.transforms))
	dependents := map[string][]string{} // id -> ids that must follow it

	for id, deps := range ps.after {
		for _, dep := range deps {
			if _, ok := ps.index[dep]; !ok {
				return nil, errors.Errorf("transform %q depends on unknown transform %q", id, dep)
			}
			indegree[id]++
			dependents[dep] = append(dependents[dep], id)
		}
	}

	ordered := make([]*patch.Transform, 0, len(ps.transforms))
	done := make(map[string]bool, len(ps.transforms))
	for len(ordered) < len(ps.transforms) {
		// Pick the earliest-declared transform whose dependencies are all done.
		next := -1
		for i, t := range ps.transforms {
			if !done[t.ID()] && indegree[t.ID()] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, &CyclicDependencyError{IDs: ps.cycleParticipants(done, dependents)}
		}
		t := ps.transforms[next]
		done[t.ID()] = true
		ordered = append(ordered, t)
		for _, dep := range dependents[t.ID()] {
			indegree[dep]--
		}
	}
	return ordered, nil
}

// cycleParticipants narrows the unordered transforms down to the ids actually
// on a cycle by trimming stuck nodes nothing else is stuck behind.
func (ps *PatchSet) cycleParticipants(done map[string]bool, dependents map[string][]string) []string {
	stuck := map[string]bool{}
	for _, t := range ps.transforms {
		if !done[t.ID()] {
			stuck[t.ID()] = true
		}
	}
	for trimmed := true; trimmed; {
		trimmed = false
		for id := range stuck {
			blocked := false
			for _, dep := range dependents[id] {
				if stuck[dep] {
					blocked = true
					break
				}
			}
			if !blocked {
				delete(stuck, id)
				trimmed = true
			}
		}
	}
	var cycle []string
	for _, t := range ps.transforms {
		if stuck[t.ID()] {
			cycle = append(cycle, t.ID())
		}
	}
	return cycle
}

// 🔎 Select returns a new patch set containing only transforms whose ids match
// the doublestar pattern, keeping edges between the survivors.
func (ps *PatchSet) Select(pattern string) (*PatchSet, error) {
	selected := New()
	for _, t := range ps.transforms {
		matched, err := doublestar.Match(pattern, t.ID())
		if err != nil {
			return nil, errors.Errorf("invalid selection pattern %q: %w", pattern, err)
		}
		if !matched {
			continue
		}
		var after []string
		for _, dep := range ps.after[t.ID()] {
			if kept, err := doublestar.Match(pattern, dep); err == nil && kept {
				after = append(after, dep)
			}
		}
		if err := selected.Add(t, after...); err != nil {
			return nil, err
		}
	}
	return selected, nil
}
