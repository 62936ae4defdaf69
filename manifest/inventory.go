package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultPattern matches fastq files, plain or compressed.
const DefaultPattern = `\.(fastq|fq)(\.(gz|bz2|xz|zst))?$`

// CompilePattern compiles a file name pattern case-insensitively. An empty
// pattern selects DefaultPattern.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

// Inventory lists root once and returns the regular files whose names match
// pattern, resolved to canonical absolute paths. Two entries resolving to the
// same file are kept once, under the first name in listing order (os.ReadDir
// sorts by name).
func Inventory(root string, pattern *regexp.Regexp) ([]CandidateFile, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingRoot, root)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, err
	}

	var (
		files []CandidateFile
		seen  = make(map[string]bool)
	)
	for _, entry := range entries {
		name := entry.Name()
		if !pattern.MatchString(name) {
			continue
		}
		path, err := filepath.EvalSymlinks(filepath.Join(absRoot, name))
		if err != nil {
			// dangling link
			continue
		}
		stat, err := os.Stat(path)
		if err != nil || !stat.Mode().IsRegular() {
			continue
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, CandidateFile{Path: path, Name: name})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidateFiles, absRoot)
	}
	return files, nil
}
