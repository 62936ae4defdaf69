package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Column names expected by the analysis engine's manifest import formats.
const (
	ColSampleID        = "sample-id"
	ColAbsolutePath    = "absolute-filepath"
	ColForwardAbsolute = "forward-absolute-filepath"
	ColReverseAbsolute = "reverse-absolute-filepath"
)

// Header returns the column names for mode.
func Header(mode Mode) []string {
	switch mode {
	case SingleEnd:
		return []string{ColSampleID, ColAbsolutePath}
	case PairedEnd:
		return []string{ColSampleID, ColForwardAbsolute, ColReverseAbsolute}
	}
	return nil
}

func (r SampleRow) fields(mode Mode) []string {
	if mode == SingleEnd {
		return []string{r.SampleID, r.Forward}
	}
	return []string{r.SampleID, r.Forward, r.Reverse}
}

func checkField(s string) error {
	if strings.ContainsAny(s, "\t\r\n") {
		return fmt.Errorf("%w: %q contains a tab or line break", ErrInvalidField, s)
	}
	return nil
}

// Encode writes m as a tab-separated table. Nothing is written when a field
// cannot be represented.
func Encode(w io.Writer, m *Manifest) error {
	header := Header(m.Mode)
	if header == nil {
		return fmt.Errorf("%w: %s", ErrInvalidMode, m.Mode)
	}
	for _, row := range m.Rows {
		for _, field := range row.fields(m.Mode) {
			if err := checkField(field); err != nil {
				return err
			}
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, row := range m.Rows {
		if _, err := fmt.Fprintln(bw, strings.Join(row.fields(m.Mode), "\t")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write stores m at path, creating missing parent directories. The table is
// encoded in memory first, then written to a temporary name in the same
// directory and renamed into place, so readers see either the previous file
// or the complete new one.
func Write(path string, m *Manifest) (err error) {
	var buf bytes.Buffer
	if err = Encode(&buf, m); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
