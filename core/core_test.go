// Package core_test contains unit tests for the kind registry and GroupKey.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/stretchr/testify/require"
)

// stubVariable is a minimal Variable used to exercise registry and keys.
type stubVariable struct {
	kind     string
	dim      int
	localDim int
}

func (s *stubVariable) Kind() string           { return s.kind }
func (s *stubVariable) ParameterDim() int      { return s.dim }
func (s *stubVariable) LocalParameterDim() int { return s.localDim }

func (s *stubVariable) AddLocal(value, delta autodiff.Vector) (autodiff.Vector, error) {
	return value, nil // identity retraction is enough for registry tests
}

// newStub registers a fresh stub kind and returns an instance.
func newStub(t *testing.T, kind string, dim int) *stubVariable {
	t.Helper()
	v := &stubVariable{kind: kind, dim: dim, localDim: dim}
	require.NoError(t, core.RegisterVariable(kind, func() core.Variable {
		return &stubVariable{kind: kind, dim: dim, localDim: dim}
	}))

	return v
}

// TestRegisterVariableValidation covers empty kinds and nil constructors.
func TestRegisterVariableValidation(t *testing.T) {
	err := core.RegisterVariable("", func() core.Variable { return nil })
	require.ErrorIs(t, err, core.ErrEmptyKind) // empty kind rejected

	require.Panics(t, func() {
		_ = core.RegisterVariable("stub-nil", nil) // nil ctor is a programmer error
	})
}

// TestNewVariableSynthesis verifies placeholder synthesis by kind name.
func TestNewVariableSynthesis(t *testing.T) {
	newStub(t, "stub-synth", 3)

	v, err := core.NewVariable("stub-synth")
	require.NoError(t, err)
	require.Equal(t, "stub-synth", v.Kind())   // type identity carried
	require.Equal(t, 3, v.ParameterDim())      // shape carried
	require.Equal(t, 3, v.LocalParameterDim()) // tangent shape carried
}

// TestNewVariableUnknownKind ensures unregistered kinds fail loudly.
func TestNewVariableUnknownKind(t *testing.T) {
	_, err := core.NewVariable("never-registered")
	require.ErrorIs(t, err, core.ErrUnknownVariableKind)
}

// TestRegisterIdempotent verifies that re-registering a kind keeps the first
// constructor and returns no error.
func TestRegisterIdempotent(t *testing.T) {
	newStub(t, "stub-idem", 2)
	require.NoError(t, core.RegisterVariable("stub-idem", func() core.Variable {
		return &stubVariable{kind: "stub-idem", dim: 99, localDim: 99}
	}))

	v, err := core.NewVariable("stub-idem")
	require.NoError(t, err)
	require.Equal(t, 2, v.ParameterDim()) // first registration wins
}

// TestRegisteredVariableKinds checks the diagnostic snapshot contains a
// freshly registered kind.
func TestRegisteredVariableKinds(t *testing.T) {
	newStub(t, "stub-listed", 1)
	require.Contains(t, core.RegisteredVariableKinds(), "stub-listed")
}

// TestGroupKeyEquivalence: same kinds, same dims, same error dim ⇒ equal
// keys, regardless of which instances produced them.
func TestGroupKeyEquivalence(t *testing.T) {
	a := []core.Variable{&stubVariable{kind: "p", dim: 2}, &stubVariable{kind: "q", dim: 3}}
	b := []core.Variable{&stubVariable{kind: "p", dim: 2}, &stubVariable{kind: "q", dim: 3}}

	ka := core.NewGroupKey("linear", a, 2)
	kb := core.NewGroupKey("linear", b, 2)
	require.Equal(t, ka, kb)         // value equality across distinct instances
	require.Equal(t, ka.String(), kb.String())
}

// TestGroupKeyDiscrimination: each axis of the key must discriminate.
func TestGroupKeyDiscrimination(t *testing.T) {
	vars := []core.Variable{&stubVariable{kind: "p", dim: 2}}
	base := core.NewGroupKey("linear", vars, 2)

	cases := []struct {
		name string
		key  core.GroupKey
	}{
		{"factor kind", core.NewGroupKey("prior", vars, 2)},
		{"variable kind", core.NewGroupKey("linear", []core.Variable{&stubVariable{kind: "r", dim: 2}}, 2)},
		{"variable dim", core.NewGroupKey("linear", []core.Variable{&stubVariable{kind: "p", dim: 3}}, 2)},
		{"error dim", core.NewGroupKey("linear", vars, 3)},
		{"variable count", core.NewGroupKey("linear", append([]core.Variable{}, vars[0], vars[0]), 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NotEqual(t, base, tc.key) // differing axis ⇒ different key
		})
	}
}

// TestGroupKeyOrderSensitive verifies that swapping differently-shaped
// variables changes the key.
func TestGroupKeyOrderSensitive(t *testing.T) {
	p := &stubVariable{kind: "p", dim: 2}
	q := &stubVariable{kind: "q", dim: 3}

	k1 := core.NewGroupKey("linear", []core.Variable{p, q}, 2)
	k2 := core.NewGroupKey("linear", []core.Variable{q, p}, 2)
	require.NotEqual(t, k1, k2)
}

// TestGroupKeyAsMapKey ensures GroupKey works directly as a map key.
func TestGroupKeyAsMapKey(t *testing.T) {
	groups := make(map[core.GroupKey][]int)
	for i := 0; i < 4; i++ {
		vars := []core.Variable{&stubVariable{kind: "p", dim: 2}}
		k := core.NewGroupKey(fmt.Sprintf("kind%d", i%2), vars, 2)
		groups[k] = append(groups[k], i)
	}
	require.Len(t, groups, 2)                                                                // two distinct kinds
	require.Equal(t, []int{0, 2}, groups[core.NewGroupKey("kind0", []core.Variable{&stubVariable{kind: "p", dim: 2}}, 2)]) // stable regrouping
}
