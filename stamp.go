package touchat

import (
	"fmt"
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/n2code/touchat/internal/output"
)

func (t *touchat) Apply(entries *EntrySet, timestamp time.Time) (touched []Touched, err error) {
	var failed int
	var lastFailure error

	for _, path := range entries.Paths() {
		result, skipped, stampErr := t.stamp(path, timestamp)
		if stampErr != nil {
			failed++
			lastFailure = stampErr
			t.Print(output.Error, "%s\n", stampErr)
			continue //errors are reported but do not stop the remaining entries
		}
		if skipped {
			continue
		}
		touched = append(touched, result)
		if t.listing == FlatListing {
			t.Print(output.Required, "%s\n", path)
		}
	}

	if failed > 0 {
		err = newCommandError(fmt.Sprintf("%s of %d could not be updated", output.Count(failed, "entry", "entries"), entries.Len()), lastFailure)
	}
	return
}

// stamp re-checks the entry because it may have vanished or changed since it was collected.
func (t *touchat) stamp(path string, timestamp time.Time) (result Touched, skipped bool, err error) {
	kind, info, statErr := kindOf(path)
	if statErr != nil {
		return result, false, fmt.Errorf("cannot inspect %s: %w", path, statErr)
	}
	if kind == absentEntry {
		t.Print(output.Verbose, "vanished, skipping: %s\n", path)
		return result, true, nil
	}

	current := times.Get(info)
	result = Touched{Path: path, Directory: kind == directoryEntry, PreviousModTime: current.ModTime()}

	if t.dryRun {
		t.Print(output.Verbose, "would change %s (modified %s)\n", path, output.Timestamp(result.PreviousModTime))
		return result, false, nil
	}
	if err = os.Chtimes(path, current.AccessTime(), timestamp); err != nil {
		return result, false, fmt.Errorf("cannot set modification time of %s: %w", path, err)
	}
	t.Print(output.Verbose, "changed %s (was modified %s)\n", path, output.Timestamp(result.PreviousModTime))
	return result, false, nil
}
