// Package patterns provides the static pattern index consumed by the
// tiered matcher.
//
// # Overview
//
// An Index maps categories to literal phrase sets plus a derived keyword
// index (normalized word -> categories containing a pattern with that
// word). It is built once at startup and read-only thereafter, so it is
// safe for unlimited concurrent readers with no locking.
//
//	idx, err := patterns.Build(map[string][]string{
//	    "explosives": {"how to make a bomb", "pipe bomb instructions"},
//	})
//
// # Sources
//
// Pattern data is static configuration. It can come from an embedded
// default table (Default), a YAML file (LoadFile), or any
// map[string][]string the embedding layer assembles itself.
//
// # Validation
//
// Build surfaces malformed tables (empty categories, empty or duplicate
// phrases) as errors at construction time; an Index is never partially
// usable.
package patterns
