package manifest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRoot               = errors.New("root directory not found")
	ErrNoCandidateFiles          = errors.New("no candidate read files")
	ErrUnclassifiableOrientation = errors.New("unclassifiable orientation")
	ErrUnresolvableSampleID      = errors.New("unresolvable sample id")
	ErrIncompletePair            = errors.New("incomplete pair")
	ErrInvalidMode               = errors.New("invalid mode")
	ErrInvalidField              = errors.New("invalid manifest field")
	ErrBadManifest               = errors.New("bad manifest")
)

// OrientationError lists every file of a batch whose orientation is Unknown.
type OrientationError struct {
	Files []string
}

func (e *OrientationError) Error() string {
	return fmt.Sprintf("%s: %d file(s): %s", ErrUnclassifiableOrientation, len(e.Files), strings.Join(e.Files, ", "))
}

func (e *OrientationError) Unwrap() error { return ErrUnclassifiableOrientation }

type SampleIDError struct {
	File string
}

func (e *SampleIDError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnresolvableSampleID, e.File)
}

func (e *SampleIDError) Unwrap() error { return ErrUnresolvableSampleID }

// PairError reports a sample whose forward/reverse files break the pairing
// rule of its mode.
type PairError struct {
	SampleID string
	Forward  []string
	Reverse  []string
}

func (e *PairError) ForwardCount() int { return len(e.Forward) }
func (e *PairError) ReverseCount() int { return len(e.Reverse) }

func (e *PairError) Error() string {
	return fmt.Sprintf(
		"%s: sample[%s] forward=%d reverse=%d forward:[%s] reverse:[%s]",
		ErrIncompletePair, e.SampleID,
		len(e.Forward), len(e.Reverse),
		strings.Join(e.Forward, ", "), strings.Join(e.Reverse, ", "),
	)
}

func (e *PairError) Unwrap() error { return ErrIncompletePair }
