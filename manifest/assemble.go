package manifest

import (
	"fmt"
	"sort"
)

type sampleGroup struct {
	forward map[string]bool
	reverse map[string]bool
}

func newSampleGroup() *sampleGroup {
	return &sampleGroup{
		forward: make(map[string]bool),
		reverse: make(map[string]bool),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Assemble joins classified files on sample id and returns one row per
// sample, sorted by sample id. In paired mode each sample needs exactly one
// forward and one reverse file. In single mode reverse files are ignored and
// each sample needs exactly one distinct forward file. The first violating
// sample in sorted order fails the whole set.
func Assemble(mode Mode, files []ClassifiedFile) ([]SampleRow, error) {
	if mode != SingleEnd && mode != PairedEnd {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}

	groups := make(map[string]*sampleGroup)
	for _, f := range files {
		if mode == SingleEnd && f.Orientation != Forward {
			continue
		}
		g, ok := groups[f.SampleID]
		if !ok {
			g = newSampleGroup()
			groups[f.SampleID] = g
		}
		switch f.Orientation {
		case Forward:
			g.forward[f.Path] = true
		case Reverse:
			g.reverse[f.Path] = true
		}
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	rows := make([]SampleRow, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		forward, reverse := sortedKeys(g.forward), sortedKeys(g.reverse)
		switch mode {
		case PairedEnd:
			if len(forward) != 1 || len(reverse) != 1 {
				return nil, &PairError{SampleID: id, Forward: forward, Reverse: reverse}
			}
			rows = append(rows, SampleRow{SampleID: id, Forward: forward[0], Reverse: reverse[0]})
		case SingleEnd:
			if len(forward) != 1 {
				return nil, &PairError{SampleID: id, Forward: forward}
			}
			rows = append(rows, SampleRow{SampleID: id, Forward: forward[0]})
		}
	}
	return rows, nil
}
