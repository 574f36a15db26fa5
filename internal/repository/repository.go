package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// ListLimit is the fixed upper bound applied to every list query. The hosted
// platform this layer mirrors caps list responses at 100 records; callers
// must treat results as non-exhaustive beyond that bound.
const ListLimit = 100
