package dirsnap

import (
	"context"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fileglance/fileglance/pkg/logging"
)

var osReadDir = os.ReadDir

// Snapshot is a point-in-time listing of a single directory. Every refresh
// produces a whole new snapshot; entries are never patched in place.
type Snapshot struct {
	Dir     string
	Taken   time.Time
	Entries []Entry
}

// Build enumerates dir and returns its snapshot with entries ordered
// directories first, each group sorted by lowercase name. Children whose
// metadata cannot be read are skipped; on enumeration failure the snapshot
// comes back with no entries alongside the error.
func Build(ctx context.Context, dir string) (Snapshot, error) {
	snapshot := Snapshot{Dir: dir, Taken: time.Now()}
	if err := ctx.Err(); err != nil {
		return snapshot, err
	}
	children, err := osReadDir(dir)
	if err != nil {
		return snapshot, err
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		info, err := child.Info()
		if err != nil || info == nil {
			// vanished or unreadable mid-listing
			logging.Debug("skipping entry", logging.String("dir", dir), logging.String("name", child.Name()), logging.Err(err))
			continue
		}
		entries = append(entries, newEntry(dir, child.Name(), info, snapshot.Taken))
	}
	sortEntries(entries)
	snapshot.Entries = entries
	return snapshot, nil
}

// sortEntries keeps the listing order stable so that names equal after
// lowercasing stay in enumeration order.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		// Directories first
		if entries[i].Kind == KindFolder && entries[j].Kind != KindFolder {
			return true
		} else if entries[i].Kind != KindFolder && entries[j].Kind == KindFolder {
			return false
		}
		// Then by case-insensitive name
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
