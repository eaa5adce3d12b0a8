package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	fsutil "fex/internal/fs"
	"golang.org/x/text/unicode/norm"
)

// isHiddenFn and readListingFn mirror the real implementations but are
// overridable in tests.
var (
	isHiddenFn    = fsutil.IsHidden
	readListingFn = ReadListing
)

// ReadListing reads the direct children of dirPath into a sorted entry slice.
// Hidden entries are skipped unless showHidden is set; children whose
// metadata cannot be read are skipped silently (a single bad entry must not
// abort the listing). The synthetic ".." entry is not part of the result.
func ReadListing(dirPath string, showHidden bool) ([]FileEntry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		rawName := e.Name()
		fullPath := filepath.Join(dirPath, rawName)

		if !showHidden && isHiddenFn(fullPath, rawName) {
			continue
		}
		if fsutil.ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		isDir := e.IsDir()
		isSymlink := (info.Mode() & os.ModeSymlink) != 0

		// Symlinks report the metadata of their target, so a link to a
		// directory browses like one. Broken links keep the link's own stat.
		if isSymlink {
			if targetInfo, err := os.Stat(fullPath); err == nil {
				info = targetInfo
				isDir = targetInfo.IsDir()
			}
		}

		size := info.Size()
		if isDir {
			size = 0
		}

		entries = append(entries, FileEntry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      size,
			Modified:  info.ModTime(),
		})
	}

	sortEntries(entries)
	return entries, nil
}

// sortEntries orders directories before files, case-insensitively by name
// within each group, ties broken by natural string order.
func sortEntries(entries []FileEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li != lj {
			return li < lj
		}
		return entries[i].Name < entries[j].Name
	})
}

// LoadDirectory replaces the state's listing with the contents of path. When
// path cannot be read it walks up to the nearest readable ancestor and loads
// that instead. The new current path, entries, and reset selection are only
// committed together once a readable directory is found; if every ancestor up
// to the root is unreadable, the state is left untouched and the original
// read failure is returned (the browser cannot present any valid listing).
func LoadDirectory(s *AppState, path string) error {
	dirPath := filepath.Clean(path)

	entries, err := readListingFn(dirPath, s.ShowHidden)
	if err != nil {
		firstErr := err
		for {
			parent := filepath.Dir(dirPath)
			if parent == dirPath {
				return firstErr
			}
			dirPath = parent
			if entries, err = readListingFn(dirPath, s.ShowHidden); err == nil {
				break
			}
		}
	}

	s.CurrentPath = dirPath
	s.Entries = withParentEntry(dirPath, entries)
	s.SelectedIndex = 0
	s.ScrollOffset = 0
	return nil
}

// withParentEntry injects the synthetic ".." entry at position 0 whenever
// dirPath has a parent, so upward navigation is reachable from the list.
func withParentEntry(dirPath string, entries []FileEntry) []FileEntry {
	parent := filepath.Dir(dirPath)
	if parent == "" || parent == dirPath {
		return entries
	}

	parentEntry := FileEntry{
		Name:     "..",
		FullPath: filepath.Join(dirPath, ".."),
		IsDir:    true,
	}
	if info, err := os.Stat(parent); err == nil {
		parentEntry.Modified = info.ModTime()
	}

	out := make([]FileEntry, 0, len(entries)+1)
	out = append(out, parentEntry)
	return append(out, entries...)
}
