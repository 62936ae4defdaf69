package manifest

import "regexp"

// readExt matches a trailing file extension of one or two tokens, such as
// ".fastq.gz" or ".fq".
const readExt = `(?:\.[a-z][a-z0-9]*){1,2}$`

type orientationRule struct {
	name string
	re   *regexp.Regexp // group 1 is the read number
}

// orientationRules are tried in order and the first match wins. Several rules
// match some names ("x_R1_001.fq" also matches the separator rule), so the
// order is part of the contract.
var orientationRules = []orientationRule{
	{
		name: "lane",
		re:   regexp.MustCompile(`(?i)_R([12])_001` + readExt),
	},
	{
		name: "separator",
		re:   regexp.MustCompile(`(?i)[._]R([12])(?:[._-][a-z0-9-]+)*?` + readExt),
	},
	{
		name: "underscore",
		re:   regexp.MustCompile(`(?i)_([12])` + readExt),
	},
}

// ClassifyOrientation returns Forward or Reverse for a file name carrying a
// read number token, Unknown otherwise.
func ClassifyOrientation(name string) Orientation {
	_, o := matchOrientationRule(name)
	return o
}

// matchOrientationRule also returns the 1-based index of the matching rule,
// or 0 when none matched.
func matchOrientationRule(name string) (int, Orientation) {
	for i, rule := range orientationRules {
		m := rule.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if m[1] == "1" {
			return i + 1, Forward
		}
		return i + 1, Reverse
	}
	return 0, Unknown
}
