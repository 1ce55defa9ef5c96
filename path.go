package touchat

import (
	"path/filepath"
	"strings"
)

const dot string = "."
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + string(filepath.Separator)

// isWithin reports whether path is the directory itself or located somewhere below it.
func isWithin(path string, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false //e.g. different volumes
	}
	return !(rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

// commonDirectory determines the deepest directory containing all given absolute directories.
// On systems with multiple volumes an empty string is returned if there is no common root.
func commonDirectory(dirs []string) string {
	if len(dirs) == 0 {
		return ""
	}
	common := filepath.Clean(dirs[0])
	for _, dir := range dirs[1:] {
		for !isWithin(dir, common) {
			parent := filepath.Dir(common)
			if parent == common {
				return ""
			}
			common = parent
		}
	}
	return common
}
