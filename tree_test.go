//go:build !windows

package touchat

import (
	"strings"
	"testing"
	"time"
)

func TestPrintTree(t *testing.T) {
	dir := setupTree(t)
	var stdout, stderr strings.Builder
	handle := makeTouchat(CreateConfig{Listing: TreeListing, Verbosity: QuietMode, Out: &stdout, ErrOut: &stderr})

	touched, err := handle.Apply(handle.Collect([]string{dir}), time.Date(2022, time.January, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("tree listing must not print while applying, got %q", stdout.String())
	}
	handle.PrintTree(touched)

	want := dir + "\n" +
		"├── a.txt\n" +
		"└── sub/\n" +
		"    └── b.txt\n"
	if stdout.String() != want {
		t.Errorf("got tree:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestPrintTreeOfFilesInDifferentDirectories(t *testing.T) {
	var stdout, stderr strings.Builder
	handle := makeTouchat(CreateConfig{Listing: TreeListing, Verbosity: QuietMode, Out: &stdout, ErrOut: &stderr})

	handle.PrintTree([]Touched{
		{Path: "/data/x/one.txt"},
		{Path: "/data/y/two.txt"},
		{Path: "/data/y", Directory: true},
	})

	want := "/data\n" +
		"├── x/\n" +
		"│   └── one.txt\n" +
		"└── y/\n" +
		"    └── two.txt\n"
	if stdout.String() != want {
		t.Errorf("got tree:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestPrintTreeOfNothing(t *testing.T) {
	var stdout, stderr strings.Builder
	makeTouchat(CreateConfig{Out: &stdout, ErrOut: &stderr}).PrintTree(nil)
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("expected no output, got %q / %q", stdout.String(), stderr.String())
	}
}
