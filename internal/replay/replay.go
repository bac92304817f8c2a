// Package replay implements the textual replay record: newline-delimited
// JSON, one input snapshot per tick, optionally preceded by a header naming
// the format version and the source level path. The simulation core never
// sees this encoding; it consumes the decoded input sequence.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// Version is the current replay format version.
const Version = 1

// ErrNoFrames is returned when a replay decodes to zero input frames.
var ErrNoFrames = errors.New("replay: no input frames")

// Replay is a decoded replay: a header plus one input record per tick.
type Replay struct {
	Version uint32
	Level   string // source level path, empty for the built-in level
	Inputs  []sim.StepInput
}

// Wire formats. Flags are 0/1 integers to keep lines short and diff-able.
type headerLine struct {
	Version int    `json:"version"`
	Level   string `json:"level"`
}

type frameLine struct {
	L       int `json:"l"`
	R       int `json:"r"`
	JP      int `json:"jp"`
	JR      int `json:"jr"`
	Start   int `json:"start"`
	Restart int `json:"restart"`
	Quit    int `json:"quit"`
}

func b01(v bool) int {
	if v {
		return 1
	}
	return 0
}

func frameOf(in sim.StepInput) frameLine {
	return frameLine{
		L:       b01(in.Left),
		R:       b01(in.Right),
		JP:      b01(in.JumpPressed),
		JR:      b01(in.JumpReleased),
		Start:   b01(in.StartPressed),
		Restart: b01(in.RestartPressed),
		Quit:    b01(in.QuitPressed),
	}
}

func (f frameLine) input() sim.StepInput {
	return sim.StepInput{
		Left:           f.L != 0,
		Right:          f.R != 0,
		JumpPressed:    f.JP != 0,
		JumpReleased:   f.JR != 0,
		StartPressed:   f.Start != 0,
		RestartPressed: f.Restart != 0,
		QuitPressed:    f.Quit != 0,
	}
}

// Encode renders the replay as JSONL: a header line followed by one line per
// input frame.
func (r *Replay) Encode() (string, error) {
	var sb strings.Builder

	version := r.Version
	if version == 0 {
		version = Version
	}
	header, err := json.Marshal(headerLine{Version: int(version), Level: r.Level})
	if err != nil {
		return "", fmt.Errorf("replay: cannot encode header: %w", err)
	}
	sb.Write(header)
	sb.WriteByte('\n')

	for _, in := range r.Inputs {
		line, err := json.Marshal(frameOf(in))
		if err != nil {
			return "", fmt.Errorf("replay: cannot encode frame: %w", err)
		}
		sb.Write(line)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// Decode parses a JSONL replay. Blank lines and lines starting with '#' are
// skipped. A header line is recognized only before the first frame; records
// after it must all be frames. Malformed records fail with their line
// number — replays are validated fully before any simulation step runs.
func Decode(text string) (*Replay, error) {
	out := &Replay{Version: Version}
	sawFrames := false

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !sawFrames && strings.Contains(line, `"version"`) {
			var header headerLine
			if err := json.Unmarshal([]byte(line), &header); err != nil {
				return nil, fmt.Errorf("replay: bad header on line %d: %w", lineNo+1, err)
			}
			if header.Version <= 0 || header.Version > 0xffff {
				return nil, fmt.Errorf("replay: invalid version %d on line %d", header.Version, lineNo+1)
			}
			out.Version = uint32(header.Version)
			out.Level = header.Level
			continue
		}

		var frame frameLine
		if err := json.Unmarshal([]byte(line), &frame); err != nil {
			return nil, fmt.Errorf("replay: bad frame on line %d: %w", lineNo+1, err)
		}
		out.Inputs = append(out.Inputs, frame.input())
		sawFrames = true
	}

	if len(out.Inputs) == 0 {
		return nil, ErrNoFrames
	}
	return out, nil
}
