package cli

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/rawbytedev/sizedarray"
)

// StepResult is the buffer after one step. Rest holds the right half of a
// split.
type StepResult struct {
	Index  int     `json:"index"`
	Op     string  `json:"op"`
	Output []int64 `json:"output"`
	Rest   []int64 `json:"rest,omitempty"`
}

// RunResult is the trace of a whole script.
type RunResult struct {
	Name  string       `json:"name,omitempty"`
	Input []int64      `json:"input"`
	Steps []StepResult `json:"steps"`
}

func (r *RunResult) String() string {
	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "script: %s\n", r.Name)
	}
	fmt.Fprintf(&b, "input: %v\n", r.Input)
	for _, st := range r.Steps {
		fmt.Fprintf(&b, "%d %s: %v", st.Index, st.Op, st.Output)
		if st.Op == OpSplit {
			fmt.Fprintf(&b, " | %v", st.Rest)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Execute runs the steps of s in order. Scripts built in code rather than
// by LoadScript are validated first; that is the only way Execute fails,
// the primitives themselves cannot.
func Execute(s *Script, logger *zap.Logger) (*RunResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	res := &RunResult{Name: s.Name, Input: s.Input, Steps: make([]StepResult, 0, len(s.Steps))}
	cur := append([]int64{}, s.Input...)
	for i, st := range s.Steps {
		out, rest := apply(cur, st, s.Fill)
		logger.Debug("step applied",
			zap.Int("step", i+1),
			zap.String("op", st.Op),
			zap.Int("in_len", len(cur)),
			zap.Int("out_len", len(out)))
		res.Steps = append(res.Steps, StepResult{Index: i + 1, Op: st.Op, Output: out, Rest: rest})
		cur = out
	}
	return res, nil
}

// apply runs one step. Steps that rearrange the buffer in place keep its
// length; the others build a new buffer of the step's length.
func apply(cur []int64, st Step, scriptFill int64) ([]int64, []int64) {
	fill := scriptFill
	if st.Fill != nil {
		fill = *st.Fill
	}
	end := len(cur)
	if st.End != nil {
		end = *st.End
	}

	switch st.Op {
	case OpSuperimpose:
		out := slices.Clone(cur)
		sizedarray.SuperimposeInto(out, st.With, st.Offset)
		return out, nil
	case OpSplice:
		out := slices.Clone(cur)
		sizedarray.SpliceInto(out, st.With, st.Offset)
		return out, nil
	case OpDriftToBegin:
		out := slices.Clone(cur)
		sizedarray.DriftToBeginInto(out, out, st.Start, st.Margin, fill)
		return out, nil
	case OpDriftToEnd:
		out := slices.Clone(cur)
		sizedarray.DriftToEndInto(out, out, end, st.Margin, fill)
		return out, nil
	}

	length := len(cur)
	if st.Length != nil {
		length = *st.Length
	}
	out := make([]int64, length)
	switch st.Op {
	case OpInitialize:
		count := length
		if st.Count != nil {
			count = *st.Count
		}
		scale := int64(1)
		if st.Scale != nil {
			scale = *st.Scale
		}
		sizedarray.InitializeTillInto(out, count, func(i int) int64 { return st.Base + int64(i)*scale }, fill)
	case OpResize:
		sizedarray.ResizeInto(out, cur, fill)
	case OpSlice:
		sizedarray.SliceRangeInto(out, cur, st.Start, end, fill)
	case OpJoin:
		sizedarray.JoinInto(out, cur, st.With, fill)
	case OpSplit:
		rest := make([]int64, max(len(cur)-length, 0))
		sizedarray.SplitInto(out, rest, cur, fill)
		return out, rest
	}
	return out, nil
}
