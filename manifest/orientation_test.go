package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOrientation(t *testing.T) {
	tests := []struct {
		name string
		rule int
		want Orientation
	}{
		{"SAMPLE1_S1_L001_R1_001.fastq.gz", 1, Forward},
		{"SAMPLE1_S1_L001_R2_001.fastq.gz", 1, Reverse},
		{"x_r2_001.FQ", 1, Reverse},
		{"B_R1.fastq.gz", 2, Forward},
		{"B.R2.fastq.gz", 2, Reverse},
		{"B_R1_trimmed.fq.gz", 2, Forward},
		{"B.R2.clean.fq.gz", 2, Reverse},
		{"A_1.fastq.gz", 3, Forward},
		{"ERR123_2.fq", 3, Reverse},
		{"weird_name.fastq.gz", 0, Unknown},
		{"sample_Run1.fq", 0, Unknown},
		{"A_12.fastq", 0, Unknown},
		{"A_R10.fastq", 0, Unknown},
		{"A.fastq.gz", 0, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, got := matchOrientationRule(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.want, ClassifyOrientation(tt.name))
		})
	}
}

// A lane-style name also satisfies the separator rule; the lane rule must
// win.
func TestClassifyOrientation_LaneRuleFirst(t *testing.T) {
	name := "S_R2_001.fastq.gz"
	assert.Regexp(t, orientationRules[1].re, name)
	rule, got := matchOrientationRule(name)
	assert.Equal(t, 1, rule)
	assert.Equal(t, Reverse, got)
}
