// Package manifest builds the sample manifest that imports paired-end or
// single-end read files into the amplicon analysis engine.
//
// A build lists one directory, classifies every read file by orientation and
// sample id, pairs the files per sample and writes a tab-separated table.
// Every step fails the whole build; a manifest file only ever exists for a
// build that succeeded.
package manifest

import (
	"fmt"
	"strings"
)

type Mode int

const (
	InvalidMode Mode = iota
	SingleEnd
	PairedEnd
)

func (m Mode) String() string {
	switch m {
	case SingleEnd:
		return "single"
	case PairedEnd:
		return "paired"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "single" or "paired", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return SingleEnd, nil
	case "paired":
		return PairedEnd, nil
	}
	return InvalidMode, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

type Orientation int

const (
	Unknown Orientation = iota
	Forward
	Reverse
)

func (o Orientation) String() string {
	switch o {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// CandidateFile is a listed read file. Path is resolved and absolute, Name is
// the directory entry name used for classification.
type CandidateFile struct {
	Path string
	Name string
}

type ClassifiedFile struct {
	Path        string
	Name        string
	SampleID    string
	Orientation Orientation
}

// SampleRow is one manifest line. Reverse is empty in single-end mode.
type SampleRow struct {
	SampleID string
	Forward  string
	Reverse  string
}

// Manifest rows are strictly ascending by SampleID.
type Manifest struct {
	Mode Mode
	Rows []SampleRow
}
