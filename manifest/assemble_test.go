package manifest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classified(id string, o Orientation, path string) ClassifiedFile {
	return ClassifiedFile{Path: path, Name: path, SampleID: id, Orientation: o}
}

func TestAssemble_Paired(t *testing.T) {
	files := []ClassifiedFile{
		classified("B", Reverse, "/d/B_R2.fq"),
		classified("A", Forward, "/d/A_1.fq"),
		classified("B", Forward, "/d/B_R1.fq"),
		classified("A", Reverse, "/d/A_2.fq"),
		classified("A", Reverse, "/d/A_2.fq"),
	}
	rows, err := Assemble(PairedEnd, files)
	require.NoError(t, err)

	want := []SampleRow{
		{SampleID: "A", Forward: "/d/A_1.fq", Reverse: "/d/A_2.fq"},
		{SampleID: "B", Forward: "/d/B_R1.fq", Reverse: "/d/B_R2.fq"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_IncompletePair(t *testing.T) {
	files := []ClassifiedFile{
		classified("A", Forward, "/d/A_1.fq"),
		classified("A", Reverse, "/d/A_2.fq"),
		classified("A", Reverse, "/d/A_2.fq"),
		classified("B", Forward, "/d/B_1.fq"),
	}
	_, err := Assemble(PairedEnd, files)
	require.ErrorIs(t, err, ErrIncompletePair)

	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, "B", pairErr.SampleID)
	assert.Equal(t, 1, pairErr.ForwardCount())
	assert.Equal(t, 0, pairErr.ReverseCount())
	assert.Contains(t, err.Error(), "/d/B_1.fq")
}

func TestAssemble_ReportsFirstSampleInOrder(t *testing.T) {
	files := []ClassifiedFile{
		classified("Z", Reverse, "/d/Z_2.fq"),
		classified("M", Forward, "/d/M_1.fq"),
		classified("M", Forward, "/d/M.x_1.fq"),
		classified("M", Reverse, "/d/M_2.fq"),
	}
	_, err := Assemble(PairedEnd, files)
	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, "M", pairErr.SampleID)
	assert.Equal(t, []string{"/d/M.x_1.fq", "/d/M_1.fq"}, pairErr.Forward)
	assert.Equal(t, []string{"/d/M_2.fq"}, pairErr.Reverse)
}

func TestAssemble_Single(t *testing.T) {
	files := []ClassifiedFile{
		classified("B", Forward, "/d/B_1.fq"),
		classified("A", Forward, "/d/A_1.fq"),
		classified("A", Forward, "/d/A_1.fq"),
		classified("A", Reverse, "/d/A_2.fq"),
		classified("C", Reverse, "/d/C_2.fq"),
	}
	rows, err := Assemble(SingleEnd, files)
	require.NoError(t, err)

	want := []SampleRow{
		{SampleID: "A", Forward: "/d/A_1.fq"},
		{SampleID: "B", Forward: "/d/B_1.fq"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_SingleRejectsDistinctForwardFiles(t *testing.T) {
	files := []ClassifiedFile{
		classified("A", Forward, "/d/A_L001_R1.fq"),
		classified("A", Forward, "/d/A_L002_R1.fq"),
	}
	_, err := Assemble(SingleEnd, files)
	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, 2, pairErr.ForwardCount())
	assert.Equal(t, 0, pairErr.ReverseCount())
}

func TestAssemble_InvalidMode(t *testing.T) {
	_, err := Assemble(InvalidMode, nil)
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = Assemble(Mode(7), nil)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Paired")
	require.NoError(t, err)
	assert.Equal(t, PairedEnd, m)

	m, err = ParseMode("single")
	require.NoError(t, err)
	assert.Equal(t, SingleEnd, m)

	_, err = ParseMode("interleaved")
	assert.ErrorIs(t, err, ErrInvalidMode)
}
