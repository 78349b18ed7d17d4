package control

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/rotorsim/internal/core/systems/physics"
)

// Segment holds Input for Ticks consecutive ticks.
type Segment struct {
	Ticks         uint64 `json:"ticks" yaml:"ticks"`
	physics.Input `yaml:",inline"`
}

// Script plays segments back in order. After the last segment its command
// keeps being repeated. An empty script yields zero input.
type Script struct {
	segments []Segment
	total    uint64
}

// NewScript validates every segment and builds a Script.
func NewScript(segments []Segment) (*Script, error) {
	s := &Script{segments: make([]Segment, 0, len(segments))}
	for i, seg := range segments {
		if seg.Ticks == 0 {
			return nil, fmt.Errorf("segment %d: ticks must be positive", i)
		}
		if err := seg.Input.Validate(); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		s.segments = append(s.segments, seg)
		s.total += seg.Ticks
	}
	return s, nil
}

// LoadScriptYAML reads a YAML list of segments.
func LoadScriptYAML(r io.Reader) (*Script, error) {
	var segments []Segment
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&segments); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return NewScript(segments)
}

// LoadScriptFile reads a YAML script from disk.
func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScriptYAML(f)
}

// Len is the number of scripted ticks before the final command starts repeating.
func (s *Script) Len() uint64 { return s.total }

func (s *Script) Next(ctx context.Context, tick uint64) (physics.Input, error) {
	if err := ctx.Err(); err != nil {
		return physics.Input{}, err
	}
	if len(s.segments) == 0 {
		return physics.Input{}, nil
	}
	var start uint64
	for _, seg := range s.segments {
		if tick < start+seg.Ticks {
			return seg.Input, nil
		}
		start += seg.Ticks
	}
	return s.segments[len(s.segments)-1].Input, nil
}
