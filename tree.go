package touchat

import (
	"path/filepath"

	out "github.com/n2code/touchat/internal/output"
)

func (t *touchat) PrintTree(touched []Touched) {
	if len(touched) == 0 {
		return
	}

	containers := make([]string, 0, len(touched))
	for _, entry := range touched {
		if entry.Directory {
			containers = append(containers, entry.Path)
		} else {
			containers = append(containers, filepath.Dir(entry.Path))
		}
	}
	root := commonDirectory(containers)
	if root == "" { //no common volume, a flat list is all we can offer
		for _, entry := range touched {
			t.Print(out.Required, "%s\n", entry.Path)
		}
		return
	}

	tree := out.NewVisualFileTree(root)
	for _, entry := range touched {
		relative, err := filepath.Rel(root, entry.Path)
		if err != nil || relative == dot {
			continue //the root is the label
		}
		if entry.Directory {
			tree.InsertDir(relative)
		} else {
			tree.InsertFile(relative, "")
		}
	}
	t.Print(out.Required, "%s", tree.Render())
	t.Print(out.Normal, "%s below %s\n", out.Count(len(touched), "entry", "entries"), root)
}
