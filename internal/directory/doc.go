// Package directory fetches user records from a remote users API.
//
// The records are read-only: they are decoded from a single GET response and
// never mutated. Query layers an in-memory cache and request coalescing over
// the Client so that a given query key is fetched at most once while fresh.
package directory
