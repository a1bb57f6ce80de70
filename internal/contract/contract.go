// Package contract provides interfaces and shared utilities for the workscope CLI's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/workscope/schema"
)

// GitClient abstracts the version-control tool behind a narrow process port
// so the log parser can be exercised with canned output in tests.
type GitClient interface {
	// RepoRoot resolves contextPath to the top level of its working copy.
	RepoRoot(ctx context.Context, contextPath string) (string, error)

	// HeadHash returns the commit hash the repository currently points at.
	HeadHash(ctx context.Context, repoPath string) (string, error)

	// CommitLog returns the raw commit listing with numeric diff stats for
	// the inclusive date range. When allBranches is set the listing spans
	// every branch and ref is ignored; otherwise ref (empty = HEAD) bounds it.
	CommitLog(ctx context.Context, repoPath string, dr schema.DateRange, ref string, allBranches bool) ([]byte, error)
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int64, error)
	Set(key string, value []byte, timestamp int64) error
	Clear() error
	Close() error
}

// CacheStatus summarizes the state of a cache store for the cache command.
type CacheStatus struct {
	Path            string
	TotalEntries    int64
	OldestEntryTime time.Time
	LastEntryTime   time.Time
}
