// Package tuple provides immutable generic tuples of two to eleven values.
//
// Each TupleN type holds N independently typed values and offers ordinal
// getters (First, Second, ...), copy-on-write setters (WithFirst, ...),
// conversion to and from []any and [N]any, structural equality, a
// deterministic hash code and a "[v1, v2, ...]" string form. Every tuple
// implements hashing.Hashable and compare.Comparable, so tuples are
// collectable.Collectable and can be used as keys wherever those are
// accepted.
//
// The arity-specific code lives in tuples_gen.go and is generated from a
// single template.
package tuple

//go:generate go run generate.go
