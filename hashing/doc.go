// Package hashing derives stable, comparable keys from arbitrary values.
//
// Go map keys must be comparable, but key functions over decoded documents
// often produce maps or slices. This package encodes such a value
// canonically and digests the encoding, yielding a fixed-length hex string
// that can key any of the grouping helpers in package arr.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. Two drivers ship with
// this package:
//
//   - [Blake2bHasher] — BLAKE2b, optionally keyed (default)
//   - [SHA3Hasher] — SHA3-256
//
// The [Manager] is a named driver registry and dispatcher. Register one or
// more [Hasher] implementations, designate a default driver, then derive keys
// through the [Manager].
//
// # Quick start
//
//	m := hashing.NewDefaultManager()
//	byTags := arr.GroupBy(posts, hashing.KeyFunc[Post](m, func(p Post) any { return p.Tags }))
//
// # Canonical encoding
//
// [Canonical] uses JSON with object members sorted by key, so two maps with
// the same contents always encode, and therefore digest, identically.
package hashing
