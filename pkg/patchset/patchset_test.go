package patchset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/patchrc/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

func newTransform(t *testing.T, id string) *patch.Transform {
	t.Helper()
	spec, err := patch.NewLiteralSpec("old "+id, false)
	require.NoError(t, err)
	tr, err := patch.New(patch.Options{
		ID:          id,
		TargetPath:  "src/" + id + ".rs",
		Spec:        spec,
		Replacement: "new " + id,
	})
	require.NoError(t, err)
	return tr
}

func ids(transforms []*patch.Transform) []string {
	out := make([]string, len(transforms))
	for i, tr := range transforms {
		out[i] = tr.ID()
	}
	return out
}

func TestPatchSet_Add_DuplicateID(t *testing.T) {
	ps := New()
	require.NoError(t, ps.Add(newTransform(t, "fix_a")))

	err := ps.Add(newTransform(t, "fix_a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate transform id")
}

func TestPatchSet_ResolveOrder(t *testing.T) {
	tests := []struct {
		name    string
		declare []string            // declaration order
		after   map[string][]string // id -> must-follow ids
		want    []string
	}{
		{
			name:    "no_edges_keeps_declaration_order",
			declare: []string{"c", "a", "b"},
			want:    []string{"c", "a", "b"},
		},
		{
			name:    "edge_beats_declaration_order",
			declare: []string{"register_module", "declare_module"},
			after:   map[string][]string{"register_module": {"declare_module"}},
			want:    []string{"declare_module", "register_module"},
		},
		{
			name:    "ties_broken_by_declaration_order",
			declare: []string{"b", "a", "z"},
			after:   map[string][]string{"z": {"b"}},
			want:    []string{"b", "a", "z"},
		},
		{
			name:    "chain",
			declare: []string{"third", "second", "first"},
			after: map[string][]string{
				"third":  {"second"},
				"second": {"first"},
			},
			want: []string{"first", "second", "third"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := New()
			for _, id := range tt.declare {
				require.NoError(t, ps.Add(newTransform(t, id), tt.after[id]...))
			}

			ordered, err := ps.ResolveOrder()
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(ordered))
		})
	}
}

func TestPatchSet_ResolveOrder_UnknownDependency(t *testing.T) {
	ps := New()
	require.NoError(t, ps.Add(newTransform(t, "fix_a"), "missing"))

	_, err := ps.ResolveOrder()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `depends on unknown transform "missing"`)
}

func TestPatchSet_ResolveOrder_Cycle(t *testing.T) {
	ps := New()
	require.NoError(t, ps.Add(newTransform(t, "a"), "b"))
	require.NoError(t, ps.Add(newTransform(t, "b"), "a"))
	require.NoError(t, ps.Add(newTransform(t, "c"), "b"))

	_, err := ps.ResolveOrder()
	require.Error(t, err)

	var cycleErr *CyclicDependencyError
	require.True(t, errors.As(err, &cycleErr))
	assert.ElementsMatch(t, []string{"a", "b"}, cycleErr.IDs, "only cycle participants are listed")
	assert.Contains(t, err.Error(), "cyclic dependency")
}

func TestPatchSet_Select(t *testing.T) {
	ps := New()
	require.NoError(t, ps.Add(newTransform(t, "lib/declare")))
	require.NoError(t, ps.Add(newTransform(t, "lib/register"), "lib/declare"))
	require.NoError(t, ps.Add(newTransform(t, "main/fix_enum")))

	selected, err := ps.Select("lib/*")
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/declare", "lib/register"}, ids(selected.Transforms()))

	// Edges between survivors are kept.
	ordered, err := selected.ResolveOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/declare", "lib/register"}, ids(ordered))
}

func TestPatchSet_Select_DropsEdgesToUnselected(t *testing.T) {
	ps := New()
	require.NoError(t, ps.Add(newTransform(t, "lib/declare")))
	require.NoError(t, ps.Add(newTransform(t, "main/register"), "lib/declare"))

	selected, err := ps.Select("main/*")
	require.NoError(t, err)
	require.Equal(t, 1, selected.Len())

	// The edge to the unselected dependency must not make the order unresolvable.
	ordered, err := selected.ResolveOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"main/register"}, ids(ordered))
}
