package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/fqManifest/manifest"
)

var (
	root = flag.String(
		"root",
		"",
		"input dir of read files",
	)
	mode = flag.String(
		"mode",
		"paired",
		"manifest mode:[paired|single]",
	)
	pattern = flag.String(
		"pattern",
		"",
		"file name regexp, case-insensitive, default:"+manifest.DefaultPattern,
	)
	output = flag.String(
		"output",
		"",
		"output manifest, default:root/manifest.tsv",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default:stderr",
	)
	list = flag.String(
		"list",
		"",
		"also write sample list[sampleID fq1 fq2]",
	)
	script = flag.String(
		"script",
		"",
		"also write import shell script",
	)
	qza = flag.String(
		"qza",
		"",
		"import artifact written by -script, default:dir of manifest/demux.qza",
	)
	check = flag.String(
		"check",
		"",
		"check existing manifest instead of building one",
	)
)

func main() {
	flag.Parse()
	var opt = parseOptions()
	if opt.check == "" && opt.root == "" {
		flag.Usage()
		log.Printf("-root or -check required")
		os.Exit(exitUsage)
	}

	log.SetFlags(log.Ldate | log.Ltime)
	if opt.logFile != "" {
		simple_util.CheckErr(os.MkdirAll(filepath.Dir(opt.logFile), 0755))
		logF, err := os.Create(opt.logFile)
		simple_util.CheckErr(err)
		defer simple_util.DeferClose(logF)
		log.SetOutput(logF)
		log.Printf("Log file:%v\n", opt.logFile)
	}

	var code = run(opt, os.Stderr)
	if code != exitOK {
		log.Printf("exit %d", code)
		os.Exit(code)
	}
}
