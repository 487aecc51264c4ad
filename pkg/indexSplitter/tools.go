package indexSplitter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Open opens path from cfgDir when cfgDir is set and holds the file,
// otherwise from fsys.
//
// It returns an io.ReadCloser the caller must close.
func Open(path, cfgDir string, fsys fs.FS) (file io.ReadCloser, err error) {
	if cfgDir != "" {
		file, err = os.Open(filepath.Join(cfgDir, path))
		if err == nil {
			return
		}
	}
	return fsys.Open(path)
}

// SortPrefix returns the keys of set in lexical order
func SortPrefix(set map[string][]string) []string {
	var keys = make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lane is the first "_" separated segment of prefix
func Lane(prefix string) string {
	return strings.Split(prefix, "_")[0]
}
