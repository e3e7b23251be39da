// Package core defines the central Variable capability, the process-wide
// kind registries, and the GroupKey type that classifies stackable factors.
//
// 🚀 What is core?
//
//	The contract layer every other lvlopt package builds on:
//	  • Variable — an unknown quantity with an ambient and a local (tangent)
//	    parameterization, retracted via AddLocal
//	  • Kind registries — every concrete variable and factor kind registers
//	    a constructor once, so generic machinery (placeholder synthesis,
//	    unflattening) never needs to know concrete types in advance
//	  • GroupKey — a value-equality key over (factor kind, per-variable
//	    (kind, parameter dim), error dim); equal keys mean "numerically
//	    stackable by shape"
//
// ✨ Concurrency:
//
//	Registries are guarded by sync.RWMutex. Registration happens at package
//	init or first construction; lookups are read-locked and cheap. All other
//	core values are immutable after construction.
//
// Errors:
//
//	ErrUnknownVariableKind - no constructor registered for a variable kind.
//	ErrUnknownFactorKind   - no unflattener registered for a factor kind.
//	ErrEmptyKind           - a kind name is the empty string.
//	ErrParamDimMismatch    - retraction value length differs from ParameterDim.
//	ErrLocalDimMismatch    - retraction delta length differs from LocalParameterDim.
package core
