// Package profiler records nested wall-clock scopes into a ring and dumps
// them as a speedscope profile. Without the profile build tag every call is
// a no-op.
package profiler

import (
	"encoding/json"
	"errors"
	"io"
)

// Event is one scope boundary on the wall clock.
type Event struct {
	AtNS  int64
	Frame int // index into the frame names
	Open  bool
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

// ErrNoEvents is returned when nothing usable was captured.
var ErrNoEvents = errors.New("profiler: no events")

// WriteSpeedscope encodes evs, in capture order, as an evented speedscope
// profile. Closes that do not match the innermost open scope are dropped and
// scopes still open at the end are closed at the last timestamp.
func WriteSpeedscope(w io.Writer, frames []string, evs []Event) error {
	if len(evs) == 0 {
		return ErrNoEvents
	}
	base := evs[0].AtNS
	out := make([]ssEvent, 0, len(evs)+8)
	stack := make([]int, 0, 16)
	last := int64(0)

	for _, e := range evs {
		at := max((e.AtNS-base)/1000, last)
		if e.Open {
			stack = append(stack, e.Frame)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.Frame})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.Frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.Frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return ErrNoEvents
	}

	fs := make([]ssFrame, len(frames))
	for i, name := range frames {
		fs[i] = ssFrame{Name: name}
	}
	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "meowcade-profiler",
		Name:     "meowcade capture",
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}
