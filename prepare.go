package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/fqManifest/manifest"
)

const (
	exitOK = iota
	exitFail
	exitUsage
)

const defaultManifestName = "manifest.tsv"

type options struct {
	root, mode, pattern, output string
	logFile                     string
	list, script, qza           string
	check                       string
}

func parseOptions() options {
	return options{
		root:    *root,
		mode:    *mode,
		pattern: *pattern,
		output:  *output,
		logFile: *logFile,
		list:    *list,
		script:  *script,
		qza:     *qza,
		check:   *check,
	}
}

func (opt options) config() (manifest.Config, error) {
	m, err := manifest.ParseMode(opt.mode)
	if err != nil {
		return manifest.Config{}, err
	}
	var out = opt.output
	if out == "" {
		out = filepath.Join(opt.root, defaultManifestName)
	}
	out, err = filepath.Abs(out)
	if err != nil {
		return manifest.Config{}, err
	}
	return manifest.NewConfig(opt.root, m, opt.pattern, out)
}

func run(opt options, stderr io.Writer) int {
	if opt.check != "" {
		if err := checkManifest(opt.check); err != nil {
			fmt.Fprintf(stderr, "check manifest failed: %v\n", err)
			return exitFail
		}
		return exitOK
	}

	cfg, err := opt.config()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	m, err := manifest.NewBuilder(cfg).Run()
	if err != nil {
		fmt.Fprintf(stderr, "build manifest failed: %v\n", err)
		return exitFail
	}

	if opt.list != "" {
		if err := writeSampleList(opt.list, sampleInfos(m)); err != nil {
			fmt.Fprintf(stderr, "write sample list failed: %v\n", err)
			return exitFail
		}
	}
	if opt.script != "" {
		var artifact = opt.qza
		if artifact == "" {
			artifact = filepath.Join(filepath.Dir(cfg.Output()), "demux.qza")
		}
		if err := createImportScript(opt.script, cfg.Output(), artifact, m.Mode); err != nil {
			fmt.Fprintf(stderr, "write import script failed: %v\n", err)
			return exitFail
		}
	}
	return exitOK
}

// checkManifest re-reads a manifest and makes sure every file it names is
// still in place.
func checkManifest(path string) error {
	m, err := manifest.Read(path)
	if err != nil {
		return err
	}
	var missing []string
	for _, p := range m.Paths() {
		if !simple_util.FileExists(p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %d missing file(s): %v", path, len(missing), missing)
	}
	log.Printf("Manifest[%s]: %d sample(s), %s, ok", path, len(m.Rows), m.Mode)
	return nil
}
