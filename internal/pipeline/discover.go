package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/cbzbinder/internal/archive"
)

// ListArchives returns the comic archive filenames directly inside dir,
// sorted lexicographically for deterministic batch assignment. It does not
// recurse: nested folders (including a previous run's specials directory)
// are each row's own concern.
func ListArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if archive.SourceExtensions[ext] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
