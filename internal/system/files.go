package system

import (
	"os"
	"sort"
)

// ListRegularFiles returns the names of the regular files in dir, sorted.
// Callers substitute a placeholder row on error; no error dialog exists.
func ListRegularFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
