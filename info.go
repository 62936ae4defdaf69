package main

import (
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/libIM"
	"github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/fqManifest/manifest"
)

var sampleListTitle = []string{"sampleID", "fq1", "fq2"}

// sampleInfos keeps manifest order.
func sampleInfos(m *manifest.Manifest) []libIM.Info {
	var infos = make([]libIM.Info, 0, len(m.Rows))
	for _, row := range m.Rows {
		infos = append(infos, libIM.Info{
			SampleID: row.SampleID,
			Fq1:      row.Forward,
			Fq2:      row.Reverse,
		})
	}
	return infos
}

// writeSampleList writes the per-sample input list read by the pipeline
// steps, one sampleID/fq1/fq2 line per sample.
func writeSampleList(fileName string, infos []libIM.Info) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer simple_util.DeferClose(file)

	fmtUtil.FprintStringArray(file, sampleListTitle, "\t")
	for _, info := range infos {
		fmtUtil.FprintStringArray(file, []string{info.SampleID, info.Fq1, info.Fq2}, "\t")
	}
	return file.Sync()
}
