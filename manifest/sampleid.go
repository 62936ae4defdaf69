package manifest

import (
	"regexp"
	"strings"
)

type sampleIDRule struct {
	name    string
	re      *regexp.Regexp
	extract func(name string, m []string) string
}

func prefix(_ string, m []string) string { return m[1] }

var (
	extRe      = regexp.MustCompile(`(?i)` + readExt)
	fallbackRe = regexp.MustCompile(`(?i)(?:(?:sample|s)[_.-]?)?\d+`)
)

// sampleIDRules are tried in order, first match wins. Matching ignores case
// but the captured prefix keeps the case of the file name. The last rule
// searches the whole stem and would also hit every name the earlier rules
// cover, so it must stay last.
var sampleIDRules = []sampleIDRule{
	{
		name:    "illumina",
		re:      regexp.MustCompile(`(?i)^(.+)_S\d+_L\d+_R[12]_001` + readExt),
		extract: prefix,
	},
	{
		name:    "separator",
		re:      regexp.MustCompile(`(?i)^(.+?)[._]R[12].*?` + readExt),
		extract: prefix,
	},
	{
		name:    "underscore",
		re:      regexp.MustCompile(`(?i)^(.+)_[12]` + readExt),
		extract: prefix,
	},
	{
		name: "fallback",
		re:   fallbackRe,
		extract: func(name string, _ []string) string {
			stem := extRe.ReplaceAllString(name, "")
			return strings.ToUpper(fallbackRe.FindString(stem))
		},
	},
}

// ExtractSampleID returns the sample id encoded in a read file name.
func ExtractSampleID(name string) (string, error) {
	_, id, ok := MatchSampleIDRule(name)
	if !ok {
		return "", &SampleIDError{File: name}
	}
	return id, nil
}

// MatchSampleIDRule reports the 1-based index of the rule that resolved name
// and the id it produced.
func MatchSampleIDRule(name string) (rule int, id string, ok bool) {
	for i, r := range sampleIDRules {
		m := r.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if id = r.extract(name, m); id != "" {
			return i + 1, id, true
		}
	}
	return 0, "", false
}
