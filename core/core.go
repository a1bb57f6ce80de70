// Package core has core logic for scanning, extraction, estimation and report assembly.
package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/huangsam/workscope/core/agg"
	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/internal/outwriter"
	"github.com/huangsam/workscope/internal/scan"
	"github.com/huangsam/workscope/schema"
)

// ExecuteGenerate runs the full pipeline: filesystem scan and git extraction
// in parallel, effort estimation, assembly, then one render per requested
// format. It serves as the main entry point for the 'generate' command.
func ExecuteGenerate(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache contract.CacheStore) error {
	start := time.Now()

	report, err := BuildReport(ctx, cfg, client, cache)
	if err != nil {
		return err
	}

	results := outwriter.WriteReport(report, cfg)
	duration := time.Since(start)
	if err := outwriter.PrintRunSummary(report, results, cfg, duration); err != nil {
		return err
	}
	return results.Err()
}

// BuildReport runs the scan and extraction stages and assembles the report
// without rendering any artifacts.
func BuildReport(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache contract.CacheStore) (*schema.Report, error) {
	var snapshot *schema.FilesystemSnapshot
	var activity schema.GitActivity

	// The walker and the extractor share no mutable state and both only
	// read the target tree, so they run concurrently.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		snapshot = runScan(cfg)
	}()
	go func() {
		defer wg.Done()
		activity = runExtraction(ctx, cfg, client, cache)
	}()
	wg.Wait()

	if snapshot == nil && cfg.GitDegraded {
		return nil, fmt.Errorf("scan stage failed and %q has no usable git history; nothing to report", cfg.RepoPath)
	}

	var baseline *schema.Report
	if cfg.BaselinePath != "" {
		loaded, err := LoadBaseline(cfg.BaselinePath)
		if err != nil {
			return nil, err
		}
		baseline = loaded
	}

	report := Assemble(cfg.Range, activity, snapshot, cfg.Catalog, baseline)
	return &report, nil
}

// runScan inventories the target tree. A failed scan degrades to a
// git-only report rather than aborting the run.
func runScan(cfg *contract.Config) *schema.FilesystemSnapshot {
	policy := scan.FilterPolicy{
		IncludeVCS:        cfg.IncludeVCS,
		IncludeCompressed: cfg.IncludeCompressed,
		IncludeArchives:   cfg.IncludeArchives,
	}
	snapshot, err := scan.Scan(cfg.RepoPath, policy)
	if err != nil {
		contract.LogWarn("scan stage failed for "+cfg.RepoPath, err)
		return nil
	}
	return snapshot
}

// runExtraction mines the commit history for the window. Any failure here is
// a degraded-but-valid result: the report still renders a filesystem view.
func runExtraction(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache contract.CacheStore) schema.GitActivity {
	if cfg.GitDegraded {
		return schema.GitActivity{}
	}
	out, err := fetchCommitLog(ctx, cfg, client, cache)
	if err != nil {
		contract.LogWarn("extraction stage failed; reporting zero git activity", err)
		return schema.GitActivity{}
	}
	return agg.BuildActivity(out)
}

// fetchCommitLog returns the raw activity log, serving it from the cache
// when possible. Only the default HEAD history walk is cacheable: a named
// ref or an all-branch walk can change while HEAD stays put, so pinning the
// head hash would serve stale bytes for those modes. They always run live.
func fetchCommitLog(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache contract.CacheStore) ([]byte, error) {
	if cfg.NoCache || cache == nil || cfg.AllBranches || cfg.Ref != "" {
		return client.CommitLog(ctx, cfg.RepoPath, cfg.Range, cfg.Ref, cfg.AllBranches)
	}

	head, err := client.HeadHash(ctx, cfg.RepoPath)
	if err != nil {
		return client.CommitLog(ctx, cfg.RepoPath, cfg.Range, cfg.Ref, cfg.AllBranches)
	}

	key := fmt.Sprintf("log:%s:%d:%d", head, cfg.Range.Start.Unix(), cfg.Range.End.Unix())
	if cached, _, err := cache.Get(key); err == nil {
		return cached, nil
	}

	out, err := client.CommitLog(ctx, cfg.RepoPath, cfg.Range, cfg.Ref, cfg.AllBranches)
	if err != nil {
		return nil, err
	}
	if err := cache.Set(key, out, time.Now().Unix()); err != nil {
		contract.LogWarn("cannot cache activity log", err)
	}
	return out, nil
}
