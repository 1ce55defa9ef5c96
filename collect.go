package touchat

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/karrick/godirwalk"
	"github.com/n2code/touchat/internal/output"
)

type entryKind int

const (
	absentEntry entryKind = iota //missing, dangling or looping link, or neither file nor directory
	fileEntry
	directoryEntry
)

// kindOf follows symbolic links, only regular files and directories are of interest.
func kindOf(path string) (kind entryKind, info fs.FileInfo, err error) {
	info, err = os.Stat(path)
	switch {
	case err != nil:
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) || errors.Is(err, syscall.ELOOP) {
			err = nil
		}
		return absentEntry, nil, err
	case info.IsDir():
		return directoryEntry, info, nil
	case info.Mode().IsRegular():
		return fileEntry, info, nil
	default:
		return absentEntry, info, nil
	}
}

func (t *touchat) Collect(paths []string) *EntrySet {
	entries := NewEntrySet()
	for _, path := range paths {
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			t.Print(output.Normal, "skipping unresolvable path %s: %s\n", path, err)
			continue
		}
		kind, _, err := kindOf(absolutePath)
		if err != nil {
			t.Print(output.Normal, "skipping inaccessible path %s: %s\n", path, err)
			continue
		}
		switch kind {
		case directoryEntry:
			if entries.Contains(absolutePath) {
				t.Print(output.Verbose, "already collected: %s\n", path)
				continue
			}
			t.collectDirectory(absolutePath, entries)
		case fileEntry:
			entries.Add(absolutePath)
		default:
			t.Print(output.Verbose, "skipping path that is neither file nor directory: %s\n", path)
		}
	}
	t.Print(output.Verbose, "collected %s\n", output.Count(entries.Len(), "entry", "entries"))
	return entries
}

// collectDirectory adds the directory, all files inside, and recurses into all subdirectories not collected yet.
// If the directory cannot be listed its contents are skipped but the directory itself remains collected.
func (t *touchat) collectDirectory(dir string, entries *EntrySet) {
	entries.Add(dir)

	children, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		t.Print(output.Normal, "skipping contents of directory %s: %s\n", dir, err)
		return
	}
	sort.Sort(children)

	var subdirectories []string
	for _, child := range children {
		childPath := filepath.Join(dir, child.Name())
		switch {
		case child.IsDir():
			subdirectories = append(subdirectories, childPath)
		case child.IsRegular():
			entries.Add(childPath)
		case child.IsSymlink():
			if isDir, _ := child.IsDirOrSymlinkToDir(); isDir {
				subdirectories = append(subdirectories, childPath)
				continue
			}
			if kind, _, _ := kindOf(childPath); kind == fileEntry {
				entries.Add(childPath)
			}
		}
	}

	for _, subdirectory := range subdirectories {
		if !entries.Contains(subdirectory) {
			t.collectDirectory(subdirectory, entries)
		}
	}
}
