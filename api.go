package touchat

import "time"

// Touchat collects filesystem entries and sets their modification time. Handles are retrieved using New.
type Touchat interface {

	// Collect expands the given file and directory paths into a deduplicated set of absolute paths.
	// Directories are expanded recursively, paths that are neither an existing file nor an existing directory are skipped.
	// Unreadable directories are kept in the set but their contents are skipped with a warning.
	Collect(paths []string) *EntrySet

	// Apply sets the modification time of every entry to the given timestamp, the access time is left unchanged.
	// Each entry is checked again before it is changed, vanished entries are skipped silently.
	// Entries that cannot be changed are reported and skipped, the returned error summarizes all such failures.
	// Unless the tree listing is configured every touched path is printed as soon as it is done.
	Apply(entries *EntrySet, timestamp time.Time) (touched []Touched, err error)

	// PrintTree outputs the touched entries as a filesystem tree below their closest common directory.
	PrintTree(touched []Touched)
}

// Touched represents a single entry whose modification time was set (or would be set in a dry run).
type Touched struct {
	Path            string //absolute, system-native
	Directory       bool
	PreviousModTime time.Time
}

// RequestChoice represents a single-choice decision callback, the first option is considered the default "yes"-like choice.
// If the choice is aborted an empty string must be returned.
type RequestChoice func(request string, options []string) (choice string)

const ChoiceAborted = ""
