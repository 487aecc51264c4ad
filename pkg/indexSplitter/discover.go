package indexSplitter

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// DefaultSuffix matches every gzipped fastq in the input directory
const DefaultSuffix = "fastq.gz"

// Discover lists indir and groups the entries ending with suffix by the
// segment before their first ".".
//
// The returned map is the prefix set; its values are the matching file names.
// Filenames are not checked against the <prefix>.<lane>.* convention.
func Discover(indir, suffix string) (map[string][]string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	entries, err := os.ReadDir(indir)
	if err != nil {
		return nil, fmt.Errorf("list input dir %s: %w", indir, err)
	}

	var prefixSet = make(map[string][]string)
	for _, entry := range entries {
		var name = entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		var prefix = strings.Split(name, ".")[0]
		prefixSet[prefix] = append(prefixSet[prefix], name)
	}
	slog.Info("Discover", "indir", indir, "suffix", suffix, "prefix", len(prefixSet))
	return prefixSet, nil
}
