package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// MaxLength bounds every buffer a script may ask for.
const MaxLength = 1 << 16

// Operation names accepted in scripts.
const (
	OpInitialize   = "initialize"
	OpResize       = "resize"
	OpSlice        = "slice"
	OpSuperimpose  = "superimpose"
	OpSplice       = "splice"
	OpJoin         = "join"
	OpSplit        = "split"
	OpDriftToBegin = "drift_to_begin"
	OpDriftToEnd   = "drift_to_end"
)

// OpInfo describes a script operation.
type OpInfo struct {
	Name string `json:"name"`
	Help string `json:"help"`
}

// Ops lists the supported operations.
var Ops = []OpInfo{
	{OpInitialize, "generate base+i*scale for the first count positions (length, count, base, scale)"},
	{OpResize, "truncate or pad to length (length)"},
	{OpSlice, "copy [start, end) into a buffer of length (length, start, end)"},
	{OpSuperimpose, "overlay `with` at offset (offset, with)"},
	{OpSplice, "overwrite from offset with `with` (offset, with)"},
	{OpJoin, "current buffer followed by `with`, truncated or padded to length (length, with)"},
	{OpSplit, "keep the first length elements, report the rest (length)"},
	{OpDriftToBegin, "move [start:] to the front behind margin fill elements (start, margin)"},
	{OpDriftToEnd, "move [:end] to the back ahead of margin fill elements (end, margin)"},
}

var (
	ErrNoSteps   = errors.New("script has no steps")
	ErrUnknownOp = errors.New("unknown operation")
	ErrLength    = fmt.Errorf("length must be within [0, %d]", MaxLength)
)

// Script is a sequence of primitives applied to an int64 buffer.
type Script struct {
	Name  string  `yaml:"name"`
	Fill  int64   `yaml:"fill"`
	Input []int64 `yaml:"input"`
	Steps []Step  `yaml:"steps"`
}

// Step is one operation. Unset pointer fields take the defaults described
// in Ops: length defaults to the current buffer length, fill to the
// script's fill.
type Step struct {
	Op     string  `yaml:"op"`
	Length *int    `yaml:"length,omitempty"`
	Start  int     `yaml:"start,omitempty"`
	End    *int    `yaml:"end,omitempty"`
	Margin int     `yaml:"margin,omitempty"`
	Offset int     `yaml:"offset,omitempty"`
	Count  *int    `yaml:"count,omitempty"`
	Base   int64   `yaml:"base,omitempty"`
	Scale  *int64  `yaml:"scale,omitempty"`
	With   []int64 `yaml:"with,omitempty"`
	Fill   *int64  `yaml:"fill,omitempty"`
}

// LoadScript decodes and validates a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks what the primitives cannot resolve themselves: operation
// names and the buffer sizes a step would allocate.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}
	if len(s.Input) > MaxLength {
		return fmt.Errorf("input: %w", ErrLength)
	}
	for i, st := range s.Steps {
		if !slices.ContainsFunc(Ops, func(o OpInfo) bool { return o.Name == st.Op }) {
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, st.Op)
		}
		if st.Length != nil && (*st.Length < 0 || *st.Length > MaxLength) {
			return fmt.Errorf("step %d: %w", i+1, ErrLength)
		}
		if len(st.With) > MaxLength {
			return fmt.Errorf("step %d: with: %w", i+1, ErrLength)
		}
	}
	return nil
}
