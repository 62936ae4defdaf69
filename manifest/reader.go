package manifest

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/liserjrqlxue/simple-util"
)

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Read parses a manifest written by Write. The mode is taken from the header
// and the rows are checked with Validate.
func Read(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrBadManifest, path)
	}

	if err := checkColumns(path); err != nil {
		return nil, err
	}

	items, title := textUtil.File2MapArray(path, "\t", nil)
	var m = &Manifest{}
	switch {
	case sameColumns(title, Header(PairedEnd)):
		m.Mode = PairedEnd
	case sameColumns(title, Header(SingleEnd)):
		m.Mode = SingleEnd
	default:
		return nil, fmt.Errorf("%w: %s: unexpected header [%s]", ErrBadManifest, path, strings.Join(title, ","))
	}

	for _, item := range items {
		row := SampleRow{SampleID: item[ColSampleID]}
		if m.Mode == PairedEnd {
			row.Forward = item[ColForwardAbsolute]
			row.Reverse = item[ColReverseAbsolute]
		} else {
			row.Forward = item[ColAbsolutePath]
		}
		m.Rows = append(m.Rows, row)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// checkColumns opens path and makes sure every row has exactly as many
// fields as the header, so the table reader never sees a ragged row.
func checkColumns(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer simple_util.DeferClose(file)

	var (
		scanner = bufio.NewScanner(file)
		columns = -1
		line    int
	)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		n := len(strings.Split(text, "\t"))
		if columns < 0 {
			columns = n
			continue
		}
		if n != columns {
			return fmt.Errorf("%w: %s:%d: %d field(s), header has %d", ErrBadManifest, path, line, n, columns)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if columns < 0 {
		return fmt.Errorf("%w: %s: empty file", ErrBadManifest, path)
	}
	return nil
}

// Validate checks the row invariants every built manifest satisfies:
// non-empty unique sample ids in strictly ascending order, and the path
// columns its mode requires.
func (m *Manifest) Validate() error {
	if Header(m.Mode) == nil {
		return fmt.Errorf("%w: %s", ErrInvalidMode, m.Mode)
	}
	for i, row := range m.Rows {
		if row.SampleID == "" {
			return fmt.Errorf("%w: row %d: empty sample id", ErrBadManifest, i+1)
		}
		if i > 0 && m.Rows[i-1].SampleID >= row.SampleID {
			return fmt.Errorf("%w: row %d: sample[%s] not after sample[%s]", ErrBadManifest, i+1, row.SampleID, m.Rows[i-1].SampleID)
		}
		if row.Forward == "" {
			return fmt.Errorf("%w: sample[%s]: missing forward path", ErrBadManifest, row.SampleID)
		}
		switch m.Mode {
		case PairedEnd:
			if row.Reverse == "" {
				return fmt.Errorf("%w: sample[%s]: missing reverse path", ErrBadManifest, row.SampleID)
			}
		case SingleEnd:
			if row.Reverse != "" {
				return fmt.Errorf("%w: sample[%s]: reverse path in single-end manifest", ErrBadManifest, row.SampleID)
			}
		}
	}
	return nil
}

// Paths returns every file path the manifest references, sorted.
func (m *Manifest) Paths() []string {
	var paths []string
	for _, row := range m.Rows {
		paths = append(paths, row.Forward)
		if row.Reverse != "" {
			paths = append(paths, row.Reverse)
		}
	}
	sort.Strings(paths)
	return paths
}
