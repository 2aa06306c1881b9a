package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExecuteDriftExamples(t *testing.T) {
	input := []int64{1, 2, 3, 0, 0, 0, 0}
	s := &Script{
		Input: input,
		Steps: []Step{
			{Op: OpDriftToBegin, Start: 0, Margin: 1},
		},
	}
	res, err := Execute(s, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 0, 0, 0}, res.Steps[0].Output)

	s = &Script{
		Input: input,
		Steps: []Step{{Op: OpDriftToEnd, End: intp(3), Fill: int64p(42)}},
	}
	res, err = Execute(s, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{42, 42, 42, 42, 1, 2, 3}, res.Steps[0].Output)
	// the script input is never modified
	assert.Equal(t, []int64{1, 2, 3, 0, 0, 0, 0}, input)
}

func TestExecuteJoin(t *testing.T) {
	s := &Script{
		Input: []int64{1, 2},
		Steps: []Step{
			{Op: OpJoin, Length: intp(4), With: []int64{3, 4, 5}},
			{Op: OpResize, Length: intp(2)},
			{Op: OpJoin, Length: intp(5), With: []int64{3}},
		},
	}
	res, err := Execute(s, nil)
	require.NoError(t, err)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, []int64{1, 2, 3, 4}, res.Steps[0].Output)
	assert.Equal(t, []int64{1, 2, 3, 0, 0}, res.Steps[2].Output)
}

func TestExecuteSplit(t *testing.T) {
	s := &Script{
		Fill:  -1,
		Input: []int64{1, 2, 3, 4, 5},
		Steps: []Step{
			{Op: OpSplit, Length: intp(3)},
			{Op: OpSplit, Length: intp(5)},
		},
	}
	res, err := Execute(s, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.Steps[0].Output)
	assert.Equal(t, []int64{4, 5}, res.Steps[0].Rest)
	assert.Equal(t, []int64{1, 2, 3, -1, -1}, res.Steps[1].Output)
	assert.Empty(t, res.Steps[1].Rest)
}

func TestExecuteRejectsInvalid(t *testing.T) {
	_, err := Execute(&Script{}, nil)
	require.ErrorIs(t, err, ErrNoSteps)
}

func TestExecuteLogsSteps(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := &Script{
		Input: []int64{1, 2, 3},
		Steps: []Step{{Op: OpResize, Length: intp(5)}, {Op: OpSlice, Start: 4}},
	}
	res, err := Execute(s, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0, 0}, res.Steps[1].Output)

	entries := logs.FilterMessage("step applied").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, OpResize, fields["op"])
	assert.Equal(t, int64(3), fields["in_len"])
	assert.Equal(t, int64(5), fields["out_len"])
}

func TestExecuteInPlaceStepsKeepLength(t *testing.T) {
	s := &Script{
		Fill:  9,
		Input: []int64{1, 2, 3},
		Steps: []Step{
			{Op: OpSuperimpose, Length: intp(6), Offset: 1, With: []int64{7}},
			{Op: OpSplice, Length: intp(1), Offset: 2, With: []int64{8, 8}},
			{Op: OpDriftToBegin, Length: intp(0), Margin: 1},
			{Op: OpDriftToEnd, End: intp(2)},
		},
	}
	res, err := Execute(s, nil)
	require.NoError(t, err)
	require.Len(t, res.Steps, 4)
	assert.Equal(t, []int64{1, 7, 3}, res.Steps[0].Output)
	assert.Equal(t, []int64{1, 7, 8}, res.Steps[1].Output)
	assert.Equal(t, []int64{9, 1, 7}, res.Steps[2].Output)
	assert.Equal(t, []int64{9, 9, 1}, res.Steps[3].Output)

	// every step owns its buffer
	res.Steps[1].Output[0] = -5
	assert.Equal(t, []int64{1, 7, 3}, res.Steps[0].Output)
	assert.Equal(t, []int64{9, 1, 7}, res.Steps[2].Output)
}
