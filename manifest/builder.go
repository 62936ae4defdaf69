package manifest

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
)

// Config is fixed when the Builder is created; nothing is read from flags or
// the environment during a build.
type Config struct {
	root    string
	mode    Mode
	pattern *regexp.Regexp
	output  string
}

// NewConfig validates mode and compiles pattern (DefaultPattern when empty).
func NewConfig(root string, mode Mode, pattern, output string) (Config, error) {
	if mode != SingleEnd && mode != PairedEnd {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	re, err := CompilePattern(pattern)
	if err != nil {
		return Config{}, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	return Config{root: root, mode: mode, pattern: re, output: output}, nil
}

func (c Config) Root() string   { return c.root }
func (c Config) Mode() Mode     { return c.mode }
func (c Config) Output() string { return c.output }

func (c Config) Pattern() string {
	if c.pattern == nil {
		return ""
	}
	return c.pattern.String()
}

type Builder struct {
	cfg Config
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build lists the root directory and turns it into a validated manifest. It
// never touches the output path.
func (b *Builder) Build() (*Manifest, error) {
	if b.cfg.pattern == nil {
		return nil, errors.New("manifest: Config not created by NewConfig")
	}
	candidates, err := Inventory(b.cfg.root, b.cfg.pattern)
	if err != nil {
		return nil, err
	}
	log.Printf("Inventory[%s]: %d file(s)", b.cfg.root, len(candidates))

	files, err := Classify(candidates)
	if err != nil {
		return nil, err
	}

	rows, err := Assemble(b.cfg.mode, files)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no %s reads in %s", ErrNoCandidateFiles, Forward, b.cfg.root)
	}
	m := &Manifest{Mode: b.cfg.mode, Rows: rows}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	for _, row := range rows {
		log.Printf("Sample[%s] <- %s %s", row.SampleID, row.Forward, row.Reverse)
	}
	return m, nil
}

// Run builds the manifest and writes it to the configured output.
func (b *Builder) Run() (*Manifest, error) {
	if b.cfg.output == "" {
		return nil, errors.New("manifest: no output path")
	}
	m, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := Write(b.cfg.output, m); err != nil {
		return nil, err
	}
	log.Printf("Manifest[%s]: %d sample(s), %s", b.cfg.output, len(m.Rows), m.Mode)
	return m, nil
}

// Classify applies both classifiers to every candidate. Any file of Unknown
// orientation fails the batch, and the error lists all such files.
func Classify(candidates []CandidateFile) ([]ClassifiedFile, error) {
	var (
		files   = make([]ClassifiedFile, 0, len(candidates))
		unknown []string
	)
	for _, c := range candidates {
		o := ClassifyOrientation(c.Name)
		if o == Unknown {
			unknown = append(unknown, c.Name)
			continue
		}
		files = append(files, ClassifiedFile{Path: c.Path, Name: c.Name, Orientation: o})
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &OrientationError{Files: unknown}
	}

	for i := range files {
		id, err := ExtractSampleID(files[i].Name)
		if err != nil {
			return nil, err
		}
		files[i].SampleID = id
	}
	return files, nil
}
