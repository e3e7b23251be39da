// SPDX-License-Identifier: MIT
// Package factor: the decomposition mechanism.
// Flatten splits any factor into (ordered numeric fields, reconstruction
// metadata); Unflatten inverts it. The split is deterministic and
// order-stable, so stacking N same-keyed factors reduces to stacking their
// i-th numeric field for every i. Reconstructed variables are type-only
// placeholders: the surrounding graph re-binds real values before
// evaluation.

package factor

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/tensor"
)

// Metadata is the non-numeric remainder of a flattened factor: everything
// needed to reconstruct an equivalent instance around new numeric values.
type Metadata struct {
	// FactorKind names the concrete factor type in the registry.
	FactorKind string

	// FieldNames records the numeric field names in decomposition order.
	FieldNames []string

	// VariableKinds records each connected variable's kind, in order, so
	// reconstruction can synthesize type-only placeholders.
	VariableKinds []string

	// Static holds the auxiliary values excluded from stacking.
	Static map[string]any
}

// Flattened pairs the stackable numeric values with their metadata.
type Flattened struct {
	// Numeric holds the field values in Metadata.FieldNames order.
	Numeric []*tensor.Dense

	// Meta is the reconstruction metadata.
	Meta Metadata
}

// UnflattenFunc rebuilds a concrete factor from recorded metadata, numeric
// field values in declared order, and freshly synthesized placeholder
// variables. Each factor kind registers exactly one.
type UnflattenFunc func(meta Metadata, numeric []*tensor.Dense, variables []core.Variable) (Factor, error)

// factorRegistry maps a factor kind to its unflattener.
// Written at package init, read-only afterward.
var (
	factorMu       sync.RWMutex
	factorRegistry = make(map[string]UnflattenFunc)
)

// RegisterFactor installs the unflattener for a factor kind. Called from the
// defining package's init — the registry analogue of definition-time
// subclass registration. Idempotent on repeat registration (first wins);
// returns core.ErrEmptyKind for an empty name.
func RegisterFactor(kind string, fn UnflattenFunc) error {
	if kind == "" {
		return core.ErrEmptyKind
	}
	if fn == nil {
		panic(fmt.Sprintf("factor: RegisterFactor(%q) with nil unflattener", kind))
	}
	factorMu.Lock()
	defer factorMu.Unlock()
	if _, ok := factorRegistry[kind]; ok {
		return nil // idempotent: first registration wins
	}
	factorRegistry[kind] = fn

	return nil
}

// unflattenerFor looks up the registered unflattener for a kind.
func unflattenerFor(kind string) (UnflattenFunc, error) {
	factorMu.RLock()
	fn, ok := factorRegistry[kind]
	factorMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Unflatten(%q): %w", kind, core.ErrUnknownFactorKind)
	}

	return fn, nil
}

// Flatten decomposes a factor into numeric field values plus metadata.
//
// Implementation:
//   - Stage 1 (Validate): non-nil factor; whitening trailing dimension must
//     agree with ErrorDim (shape inconsistency is detected here, fatally);
//     every declared numeric field must carry a value.
//   - Stage 2 (Split): clone each numeric value (the source factor is never
//     mutated and shares no storage with the result); record field names,
//     variable kinds, and static values.
//
// The field order is the factor kind's declared NumericFields order, which
// is fixed per kind — the determinism stacking relies on.
// Complexity: O(total numeric payload).
func Flatten(f Factor) (*Flattened, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if f.ScaleTrilInv().TrailingDim() != f.ErrorDim() {
		return nil, fmt.Errorf("Flatten(%s): %w", f.Kind(), ErrShapeInconsistent)
	}

	fields := f.NumericFields()
	numeric := make([]*tensor.Dense, len(fields))
	names := make([]string, len(fields))
	for i, fld := range fields {
		if fld.Value == nil {
			return nil, fmt.Errorf("Flatten(%s): field %q: %w", f.Kind(), fld.Name, tensor.ErrNilTensor)
		}
		numeric[i] = fld.Value.Clone()
		names[i] = fld.Name
	}

	vars := f.Variables()
	kinds := make([]string, len(vars))
	for i, v := range vars {
		kinds[i] = v.Kind()
	}

	return &Flattened{
		Numeric: numeric,
		Meta: Metadata{
			FactorKind:    f.Kind(),
			FieldNames:    names,
			VariableKinds: kinds,
			Static:        f.StaticFields(),
		},
	}, nil
}

// Unflatten reconstructs a factor from metadata and numeric field values.
//
// Implementation:
//   - Stage 1 (Validate): the numeric value count must equal the recorded
//     field-name count (ErrFieldCountMismatch — fatal configuration error).
//   - Stage 2 (Synthesize): build one placeholder variable per recorded
//     kind via the core registry; an unregistered kind is fatal
//     (core.ErrUnknownVariableKind), the analogue of a type without a
//     no-argument constructor.
//   - Stage 3 (Rebuild): dispatch to the kind's registered unflattener.
//
// The reconstructed factor has the same static metadata and numeric values
// as the original; its variables carry type identity only.
func Unflatten(meta Metadata, numeric []*tensor.Dense) (Factor, error) {
	if len(numeric) != len(meta.FieldNames) {
		return nil, fmt.Errorf("Unflatten(%s): %d values for %d fields: %w",
			meta.FactorKind, len(numeric), len(meta.FieldNames), ErrFieldCountMismatch)
	}
	variables := make([]core.Variable, len(meta.VariableKinds))
	for i, kind := range meta.VariableKinds {
		v, err := core.NewVariable(kind)
		if err != nil {
			return nil, fmt.Errorf("Unflatten(%s): variable %d: %w", meta.FactorKind, i, err)
		}
		variables[i] = v
	}
	fn, err := unflattenerFor(meta.FactorKind)
	if err != nil {
		return nil, err
	}

	return fn(meta, numeric, variables)
}

// GroupKeyOf derives the stacking key of a factor: concrete kind, the
// (kind, parameter dim) pair of every connected variable in order, and the
// error dimension. A pure function of type/shape metadata — numeric values
// never influence the key.
func GroupKeyOf(f Factor) (core.GroupKey, error) {
	if f == nil {
		return core.GroupKey{}, ErrNilFactor
	}

	return core.NewGroupKey(f.Kind(), f.Variables(), f.ErrorDim()), nil
}
