package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/schema"
)

var errCacheMiss = errors.New("cache miss")

// memoryCache is an in-process CacheStore for exercising the caching paths.
type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(key string) ([]byte, int64, error) {
	if v, ok := m.entries[key]; ok {
		return v, 0, nil
	}
	return nil, 0, errCacheMiss
}

func (m *memoryCache) Set(key string, value []byte, _ int64) error {
	m.entries[key] = value
	m.sets++
	return nil
}

func (m *memoryCache) Clear() error {
	m.entries = make(map[string][]byte)
	return nil
}

func (m *memoryCache) Close() error { return nil }

var _ contract.CacheStore = &memoryCache{} // Compile-time check

func testConfig(repoPath string) *contract.Config {
	return &contract.Config{
		RepoPath:    repoPath,
		Range:       weeklyRange(),
		Catalog:     schema.DefaultCatalog(),
		CommitLimit: contract.DefaultCommitLimit,
	}
}

func TestFetchCommitLogBypassesCache(t *testing.T) {
	cfg := testConfig("/repo")
	cfg.NoCache = true

	client := new(contract.MockGitClient)
	client.On("CommitLog", mock.Anything, "/repo", cfg.Range, "", false).Return([]byte("log"), nil).Once()

	cache := newMemoryCache()
	out, err := fetchCommitLog(context.Background(), cfg, client, cache)
	require.NoError(t, err)
	assert.Equal(t, []byte("log"), out)
	assert.Zero(t, cache.sets, "bypassed cache must stay untouched")
	client.AssertExpectations(t)
}

func TestFetchCommitLogPopulatesAndServesCache(t *testing.T) {
	cfg := testConfig("/repo")

	client := new(contract.MockGitClient)
	client.On("HeadHash", mock.Anything, "/repo").Return("abc123", nil).Twice()
	client.On("CommitLog", mock.Anything, "/repo", cfg.Range, "", false).Return([]byte("log"), nil).Once()

	cache := newMemoryCache()

	// First call misses and populates.
	out, err := fetchCommitLog(context.Background(), cfg, client, cache)
	require.NoError(t, err)
	assert.Equal(t, []byte("log"), out)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from the cache; CommitLog is not invoked again.
	out, err = fetchCommitLog(context.Background(), cfg, client, cache)
	require.NoError(t, err)
	assert.Equal(t, []byte("log"), out)
	client.AssertExpectations(t)
}

func TestFetchCommitLogAllBranchesRunsLive(t *testing.T) {
	cfg := testConfig("/repo")
	cfg.AllBranches = true

	// HEAD does not move when a side branch gains commits, so an all-branch
	// walk must never be served from a head-keyed cache entry.
	client := new(contract.MockGitClient)
	client.On("CommitLog", mock.Anything, "/repo", cfg.Range, "", true).Return([]byte("main only"), nil).Once()
	client.On("CommitLog", mock.Anything, "/repo", cfg.Range, "", true).Return([]byte("main plus side branch"), nil).Once()

	cache := newMemoryCache()

	out, err := fetchCommitLog(context.Background(), cfg, client, cache)
	require.NoError(t, err)
	assert.Equal(t, []byte("main only"), out)

	out, err = fetchCommitLog(context.Background(), cfg, client, cache)
	require.NoError(t, err)
	assert.Equal(t, []byte("main plus side branch"), out)

	assert.Zero(t, cache.sets, "all-branch walks never populate the cache")
	client.AssertExpectations(t)
}

func TestFetchCommitLogNamedRefRunsLive(t *testing.T) {
	cfg := testConfig("/repo")
	cfg.Ref = "feature"

	client := new(contract.MockGitClient)
	client.On("CommitLog", mock.Anything, "/repo", cfg.Range, "feature", false).Return([]byte("feature log"), nil).Twice()

	cache := newMemoryCache()
	for range 2 {
		out, err := fetchCommitLog(context.Background(), cfg, client, cache)
		require.NoError(t, err)
		assert.Equal(t, []byte("feature log"), out)
	}
	assert.Zero(t, cache.sets, "named-ref walks never populate the cache")
	client.AssertExpectations(t)
}

func TestFetchCommitLogHeadFailureFallsThrough(t *testing.T) {
	cfg := testConfig("/repo")

	client := new(contract.MockGitClient)
	client.On("HeadHash", mock.Anything, "/repo").Return("", errors.New("detached state")).Once()
	client.On("CommitLog", mock.Anything, "/repo", cfg.Range, "", false).Return([]byte("log"), nil).Once()

	out, err := fetchCommitLog(context.Background(), cfg, client, newMemoryCache())
	require.NoError(t, err)
	assert.Equal(t, []byte("log"), out)
	client.AssertExpectations(t)
}

func TestRunExtractionDegraded(t *testing.T) {
	cfg := testConfig("/not-a-repo")
	cfg.GitDegraded = true

	client := new(contract.MockGitClient)
	activity := runExtraction(context.Background(), cfg, client, nil)

	assert.Zero(t, activity.CommitCount)
	client.AssertExpectations(t) // No git calls at all in degraded mode.
}

func TestRunExtractionFailureYieldsZeroActivity(t *testing.T) {
	cfg := testConfig("/repo")
	cfg.NoCache = true

	client := new(contract.MockGitClient)
	client.On("CommitLog", mock.Anything, "/repo", cfg.Range, "", false).Return([]byte(nil), errors.New("git exploded")).Once()

	activity := runExtraction(context.Background(), cfg, client, nil)
	assert.Zero(t, activity.CommitCount)
	assert.Zero(t, activity.RawLinesAdded)
	client.AssertExpectations(t)
}

func TestBuildReportFilesystemOnly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("one\ntwo\n"), 0o644))

	cfg := testConfig(root)
	cfg.GitDegraded = true

	report, err := BuildReport(context.Background(), cfg, new(contract.MockGitClient), nil)
	require.NoError(t, err)
	require.NotNil(t, report.Filesystem)
	assert.Equal(t, 1, report.Filesystem.TotalFiles)
	assert.Equal(t, int64(2), report.Filesystem.SumLines)
	assert.Zero(t, report.Git.CommitCount)
	assert.Equal(t, int64(0), report.Effort.Minutes)
}

func TestBuildReportNothingUsable(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing"))
	cfg.GitDegraded = true

	_, err := BuildReport(context.Background(), cfg, new(contract.MockGitClient), nil)
	assert.Error(t, err)
}
