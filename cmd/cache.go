package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/internal/iocache"
)

// cacheSetup loads minimal configuration needed for cache operations.
// Cache commands skip the full shared setup: no Git resolution, no window
// parsing, just the store itself.
func cacheSetup() (*iocache.Store, error) {
	if err := loadConfigFile(); err != nil {
		return nil, err
	}
	return iocache.NewStore(contract.GetCacheDBFilePath())
}

// cacheCmd focused on cache management.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the Git activity cache (improves performance)",
	Long: `Manage the cache that stores raw Git activity logs between runs.

Workscope caches git log output keyed by repository head and analysis window,
so repeated reports over unchanged history skip the git invocation entirely.

Subcommands:
  status - Show cache statistics
  clear  - Remove all cached data

Examples:
  # Check cache status
  workscope cache status

  # Clear cache after history rewrites
  workscope cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached Git activity data",
	Long: `Delete every cached Git activity log.

Use this when:
- Repository history was rewritten (rebase, force push)
- Cache may be stale or corrupted
- Measuring performance without cache`,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := cacheSetup()
		if err != nil {
			contract.LogFatal("Cannot open cache", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics",
	Long: `Show entry counts and timestamps for the Git activity cache.

Use this to:
- Verify the cache is being populated
- Check when the cache was last updated`,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := cacheSetup()
		if err != nil {
			contract.LogFatal("Cannot open cache", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.Status()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		fmt.Printf("Cache database: %s\n", status.Path)
		fmt.Printf("Total entries:  %d\n", status.TotalEntries)
		if status.TotalEntries > 0 {
			fmt.Printf("Oldest entry:   %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
			fmt.Printf("Newest entry:   %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		}
	},
}
