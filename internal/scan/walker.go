package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/schema"
)

// topExtensionLimit caps the per-extension histogram in the snapshot.
const topExtensionLimit = 8

// noExtensionBucket labels files without an extension in the histogram.
const noExtensionBucket = "(none)"

// vcsDirNames are version-control metadata directories excluded by default.
var vcsDirNames = map[string]struct{}{
	".git": {},
	".svn": {},
	".hg":  {},
	".bzr": {},
}

// compressedExts are archive container extensions excluded by default.
var compressedExts = map[string]struct{}{
	".zip": {}, ".gz": {}, ".tgz": {}, ".bz2": {}, ".xz": {},
	".7z": {}, ".rar": {}, ".tar": {}, ".lz4": {}, ".zst": {},
}

// archiveNameMarkers flag archive/temp naming patterns on files and folders.
var archiveNameMarkers = []string{"archive", "backup", ".bak", ".tmp", ".old"}

// FilterPolicy is the set of opt-out exclusions applied during the walk.
// All three categories are excluded by default; each flag re-includes one.
type FilterPolicy struct {
	IncludeVCS        bool
	IncludeCompressed bool
	IncludeArchives   bool
}

// Applied lists the exclusions in effect, for the snapshot manifest.
func (p FilterPolicy) Applied() []string {
	var applied []string
	if !p.IncludeVCS {
		applied = append(applied, "vcs-metadata")
	}
	if !p.IncludeCompressed {
		applied = append(applied, "compressed-archives")
	}
	if !p.IncludeArchives {
		applied = append(applied, "archive-temp-names")
	}
	return applied
}

func (p FilterPolicy) skipDir(name string) bool {
	lower := strings.ToLower(name)
	if !p.IncludeVCS {
		if _, ok := vcsDirNames[lower]; ok {
			return true
		}
	}
	return !p.IncludeArchives && hasArchiveMarker(lower)
}

func (p FilterPolicy) skipFile(name string) bool {
	lower := strings.ToLower(name)
	if !p.IncludeCompressed {
		if _, ok := compressedExts[filepath.Ext(lower)]; ok {
			return true
		}
	}
	return !p.IncludeArchives && hasArchiveMarker(lower)
}

func hasArchiveMarker(lowerName string) bool {
	for _, marker := range archiveNameMarkers {
		if strings.Contains(lowerName, marker) {
			return true
		}
	}
	return false
}

// Scan walks the tree rooted at root and aggregates a FilesystemSnapshot.
//
// Traversal is iterative over an explicit directory stack so pathological
// tree depth cannot exhaust the call stack. Symbolic links are recorded as
// items but never expanded or measured. Per-entry failures are logged and
// skipped; only an unreadable root fails the scan.
func Scan(root string, policy FilterPolicy) (*schema.FilesystemSnapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.ReadDir(absRoot); err != nil {
		return nil, err
	}

	snapshot := &schema.FilesystemSnapshot{
		Root:           absRoot,
		FiltersApplied: policy.Applied(),
	}
	histogram := make(map[string]int)
	var extOrder []string // first-encounter order, the deterministic tiebreak

	stack := []string{absRoot}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			contract.LogWarn("cannot read directory "+dir, err)
			continue
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())

			if entry.Type()&fs.ModeSymlink != 0 {
				snapshot.TotalItems++
				snapshot.TotalLinks++
				continue
			}

			if entry.IsDir() {
				if policy.skipDir(entry.Name()) {
					continue
				}
				snapshot.TotalItems++
				snapshot.TotalFolders++
				stack = append(stack, full)
				continue
			}

			if policy.skipFile(entry.Name()) {
				continue
			}
			record, ok := buildFileRecord(absRoot, full, entry)
			if !ok {
				continue
			}
			snapshot.TotalItems++
			snapshot.TotalFiles++
			accumulate(snapshot, record)

			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if ext == "" {
				ext = noExtensionBucket
			}
			if _, seen := histogram[ext]; !seen {
				extOrder = append(extOrder, ext)
			}
			histogram[ext]++
		}
	}

	snapshot.TopExtensions = topExtensions(histogram, extOrder)
	return snapshot, nil
}

// buildFileRecord stats and measures one retained file. A file that cannot
// be read is still recorded, with nil metrics.
func buildFileRecord(root, full string, entry os.DirEntry) (schema.FileRecord, bool) {
	info, err := entry.Info()
	if err != nil {
		contract.LogWarn("cannot stat "+full, err)
		return schema.FileRecord{}, false
	}

	rel, err := filepath.Rel(root, full)
	if err != nil {
		rel = full
	}

	record := schema.FileRecord{
		AbsolutePath: full,
		RelativePath: filepath.ToSlash(rel),
		SizeBytes:    info.Size(),
		LastModified: info.ModTime(),
	}

	isBinary, err := Classify(full)
	if err != nil {
		// Unreadable files keep nil metrics; the caller treats this
		// the same as binary.
		return record, true
	}
	record.IsBinary = isBinary
	if isBinary {
		return record, true
	}

	lines, chars, err := Measure(full)
	if err != nil {
		return record, true
	}
	record.Lines = &lines
	record.Chars = &chars
	return record, true
}

func accumulate(snapshot *schema.FilesystemSnapshot, record schema.FileRecord) {
	snapshot.SumSizeBytes += record.SizeBytes
	if record.Lines != nil {
		snapshot.SumLines += *record.Lines
	}
	if record.Chars != nil {
		snapshot.SumChars += *record.Chars
	}
	if record.LastModified.After(snapshot.LastModified) {
		snapshot.LastModified = record.LastModified
	}
	snapshot.Files = append(snapshot.Files, record)
}

// topExtensions ranks the histogram by count descending, first-encountered
// extension winning ties, and keeps the top 8.
func topExtensions(histogram map[string]int, order []string) []schema.ExtensionCount {
	ranked := make([]schema.ExtensionCount, 0, len(order))
	for _, ext := range order {
		ranked = append(ranked, schema.ExtensionCount{Extension: ext, Count: histogram[ext]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topExtensionLimit {
		ranked = ranked[:topExtensionLimit]
	}
	return ranked
}
