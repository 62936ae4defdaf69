package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/fqManifest/manifest"
)

// import types and formats of the analysis engine, per manifest mode
var importFormat = map[manifest.Mode][2]string{
	manifest.SingleEnd: {"SampleData[SequencesWithQuality]", "SingleEndFastqManifestPhred33V2"},
	manifest.PairedEnd: {"SampleData[PairedEndSequencesWithQuality]", "PairedEndFastqManifestPhred33V2"},
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func createShell(fileName, cmd string, args ...string) (err error) {
	if err = os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer simple_util.DeferClose(file)

	_, err = fmt.Fprintf(file, "#!/bin/bash\nset -euo pipefail\n%s %s\n", cmd, strings.Join(args, " \\\n  "))
	if err != nil {
		return err
	}
	return file.Chmod(0755)
}

// createImportScript writes, but never runs, the command that imports the
// manifest into the analysis engine.
func createImportScript(fileName, manifestPath, artifact string, mode manifest.Mode) error {
	format, ok := importFormat[mode]
	if !ok {
		return fmt.Errorf("%w: %s", manifest.ErrInvalidMode, mode)
	}
	return createShell(
		fileName,
		"qiime tools import",
		"--type "+shellQuote(format[0]),
		"--input-path "+shellQuote(manifestPath),
		"--output-path "+shellQuote(artifact),
		"--input-format "+format[1],
	)
}
