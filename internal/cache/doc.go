// Package cache keeps query results in memory until they go stale.
//
// Entries live only as long as the process. directory.Query reads through
// the store: a fresh entry is served without touching the network, a stale
// one is dropped on read and the next fetch replaces it.
package cache
