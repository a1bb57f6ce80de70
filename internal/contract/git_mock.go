package contract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/huangsam/workscope/schema"
)

// MockGitClient is a testify mock used by package tests across the module.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// RepoRoot implements the GitClient interface.
func (m *MockGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	return ret.String(0), ret.Error(1)
}

// HeadHash implements the GitClient interface.
func (m *MockGitClient) HeadHash(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	return ret.String(0), ret.Error(1)
}

// CommitLog implements the GitClient interface.
func (m *MockGitClient) CommitLog(ctx context.Context, repoPath string, dr schema.DateRange, ref string, allBranches bool) ([]byte, error) {
	ret := m.Called(ctx, repoPath, dr, ref, allBranches)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}
