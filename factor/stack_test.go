// Package factor_test contains unit tests for Stack/UnstackFactors:
// batching same-keyed factors field-by-field along a leading axis.
package factor_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/factor"
	"github.com/stretchr/testify/require"
)

// TestStackLinearFactors stacks three same-keyed linear factors and checks
// the batched field shapes and preserved error dimension.
func TestStackLinearFactors(t *testing.T) {
	members := []factor.Factor{
		linearOn(t, mustVector(t, 2), 2, 1),
		linearOn(t, mustVector(t, 2), 2, 2),
		linearOn(t, mustVector(t, 2), 2, 3),
	}

	batched, err := factor.Stack(members...)
	require.NoError(t, err)
	require.Equal(t, factor.KindLinear, batched.Kind())
	require.Equal(t, 2, batched.ErrorDim()) // trailing dim unchanged by batching

	flat, err := factor.Flatten(batched)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 2}, flat.Numeric[0].Shape()) // A0: (N, errDim, paramDim)
	require.Equal(t, []int{3, 2}, flat.Numeric[1].Shape())    // b: (N, errDim)
	require.Equal(t, []int{3, 2, 2}, flat.Numeric[2].Shape()) // scale: (N, errDim, errDim)

	// The batch lands in the same group as its members.
	kb, err := factor.GroupKeyOf(batched)
	require.NoError(t, err)
	km, err := factor.GroupKeyOf(members[0])
	require.NoError(t, err)
	require.Equal(t, km, kb)
}

// TestStackUnstackRoundTrip verifies member-by-member reconstruction.
func TestStackUnstackRoundTrip(t *testing.T) {
	members := []factor.Factor{
		linearOn(t, mustVector(t, 2), 2, 1),
		linearOn(t, mustVector(t, 2), 2, 5),
	}

	batched, err := factor.Stack(members...)
	require.NoError(t, err)
	back, err := factor.UnstackFactors(batched)
	require.NoError(t, err)
	require.Len(t, back, 2)

	for i := range members {
		want, err := factor.Flatten(members[i])
		require.NoError(t, err)
		got, err := factor.Flatten(back[i])
		require.NoError(t, err)
		require.Equal(t, want.Meta, got.Meta) // metadata preserved per member
		for j := range want.Numeric {
			require.True(t, want.Numeric[j].Equal(got.Numeric[j])) // numeric data preserved in order
		}
	}
}

// TestStackKeyMismatch rejects members of different shape signatures.
func TestStackKeyMismatch(t *testing.T) {
	_, err := factor.Stack(
		linearOn(t, mustVector(t, 2), 2, 1),
		linearOn(t, mustVector(t, 3), 2, 1), // different variable dimension
	)
	require.ErrorIs(t, err, factor.ErrGroupKeyMismatch)

	prior, perr := factor.NewPriorFactor(mustVector(t, 2), mustVec(t, 0, 0), mustIdentity(t, 2))
	require.NoError(t, perr)
	_, err = factor.Stack(linearOn(t, mustVector(t, 2), 2, 1), prior) // different kind
	require.ErrorIs(t, err, factor.ErrGroupKeyMismatch)
}

// TestStackEmptyAndNil covers the degenerate inputs.
func TestStackEmptyAndNil(t *testing.T) {
	_, err := factor.Stack()
	require.ErrorIs(t, err, factor.ErrEmptyGroup)

	_, err = factor.Stack(nil)
	require.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestStackSingleMember: a batch of one is valid and reversible.
func TestStackSingleMember(t *testing.T) {
	m := linearOn(t, mustVector(t, 2), 2, 7)

	batched, err := factor.Stack(m)
	require.NoError(t, err)
	back, err := factor.UnstackFactors(batched)
	require.NoError(t, err)
	require.Len(t, back, 1)

	want, err := factor.Flatten(m)
	require.NoError(t, err)
	got, err := factor.Flatten(back[0])
	require.NoError(t, err)
	for j := range want.Numeric {
		require.True(t, want.Numeric[j].Equal(got.Numeric[j]))
	}
}
