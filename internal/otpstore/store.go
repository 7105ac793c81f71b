// Package otpstore holds short-lived, single-use secrets for the
// forgot-password flow: the mailed passcodes and the reset tickets handed
// out after a successful confirmation.
//
// The store is an injected abstraction so a single instance can run on
// the in-process backend while multi-instance deployments share a Redis
// backend. Entries are keyed by email; writing an existing key replaces
// the prior value, which gives the flow its last-write-wins semantics.
package otpstore

import (
	"context"
	"time"
)

// Store is a key-value store with per-entry TTLs.
type Store interface {
	// Put stores value under key, replacing any existing entry and its
	// remaining TTL.
	Put(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the live value for key. Expired or absent entries
	// report ok=false; the two cases are indistinguishable on purpose.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
