// SPDX-License-Identifier: MIT
// Package factor: stacking same-keyed factors into one batched instance.
// Stacking is field-by-field: the i-th numeric field of the batch is the
// leading-axis stack of every member's i-th field, which is exactly what the
// deterministic decomposition order guarantees to be well-formed. The
// batching loop itself (partitioning a graph's factors by key, re-associating
// batched outputs) belongs to the optimizer, not to this core.

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/tensor"
)

// Stack combines factors sharing one GroupKey into a single batched factor
// whose numeric fields carry a new leading batch axis.
//
// Implementation:
//   - Stage 1 (Validate): non-empty group; every member's key must equal the
//     first member's (ErrGroupKeyMismatch — members of different shapes are
//     not numerically stackable).
//   - Stage 2 (Decompose): flatten every member; same keys guarantee equal
//     field counts and per-field shapes.
//   - Stage 3 (Restack): tensor.Stack the i-th fields, then Unflatten with
//     the first member's metadata.
//
// Complexity: O(N · total numeric payload).
func Stack(factors ...Factor) (Factor, error) {
	if len(factors) == 0 {
		return nil, ErrEmptyGroup
	}
	first, err := GroupKeyOf(factors[0])
	if err != nil {
		return nil, err
	}
	flats := make([]*Flattened, len(factors))
	for i, f := range factors {
		key, err := GroupKeyOf(f)
		if err != nil {
			return nil, err
		}
		if key != first {
			return nil, fmt.Errorf("Stack: member %d key %s vs %s: %w", i, key, first, ErrGroupKeyMismatch)
		}
		if flats[i], err = Flatten(f); err != nil {
			return nil, err
		}
	}

	numeric := make([]*tensor.Dense, len(flats[0].Numeric))
	for i := range numeric {
		column := make([]*tensor.Dense, len(flats))
		for j, fl := range flats {
			column[j] = fl.Numeric[i]
		}
		stacked, err := tensor.Stack(column...)
		if err != nil {
			return nil, fmt.Errorf("Stack: field %q: %w", flats[0].Meta.FieldNames[i], err)
		}
		numeric[i] = stacked
	}

	return Unflatten(flats[0].Meta, numeric)
}

// UnstackFactors splits a batched factor back into its members, inverting
// Stack. Every numeric field is unstacked along its leading axis; the batch
// size must agree across fields (ErrShapeInconsistent otherwise).
func UnstackFactors(f Factor) ([]Factor, error) {
	flat, err := Flatten(f)
	if err != nil {
		return nil, err
	}
	if len(flat.Numeric) == 0 {
		return nil, fmt.Errorf("UnstackFactors(%s): no numeric fields: %w", flat.Meta.FactorKind, ErrShapeInconsistent)
	}

	columns := make([][]*tensor.Dense, len(flat.Numeric))
	batch := -1
	for i, field := range flat.Numeric {
		parts, err := tensor.Unstack(field)
		if err != nil {
			return nil, fmt.Errorf("UnstackFactors(%s): field %q: %w", flat.Meta.FactorKind, flat.Meta.FieldNames[i], err)
		}
		if batch == -1 {
			batch = len(parts)
		} else if len(parts) != batch {
			return nil, fmt.Errorf("UnstackFactors(%s): field %q batch %d vs %d: %w",
				flat.Meta.FactorKind, flat.Meta.FieldNames[i], len(parts), batch, ErrShapeInconsistent)
		}
		columns[i] = parts
	}

	out := make([]Factor, batch)
	for j := 0; j < batch; j++ {
		numeric := make([]*tensor.Dense, len(columns))
		for i := range columns {
			numeric[i] = columns[i][j]
		}
		member, err := Unflatten(flat.Meta, numeric)
		if err != nil {
			return nil, err
		}
		out[j] = member
	}

	return out, nil
}
