package profiler

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestWriteSpeedscope(t *testing.T) {
	evs := []Event{
		{AtNS: 1_000_000, Frame: 0, Open: true},
		{AtNS: 1_500_000, Frame: 1, Open: true},
		{AtNS: 1_600_000, Frame: 0},             // mismatched, dropped
		{AtNS: 1_400_000, Frame: 1},             // clock went back
		{AtNS: 3_000_000, Frame: 1, Open: true}, // left open
	}
	var buf bytes.Buffer
	if err := WriteSpeedscope(&buf, []string{"update", "render"}, evs); err != nil {
		t.Fatal(err)
	}

	var doc ssFile
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	got := doc.Profiles[0].Events
	want := []ssEvent{
		{"O", 0, 0},
		{"O", 500, 1},
		{"C", 500, 1},
		{"O", 2000, 1},
		{"C", 2000, 1},
		{"C", 2000, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if doc.Profiles[0].EndValue != 2000 || len(doc.Shared.Frames) != 2 {
		t.Fatalf("profile = %+v", doc.Profiles[0])
	}
}

func TestWriteSpeedscopeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSpeedscope(&buf, nil, nil); !errors.Is(err, ErrNoEvents) {
		t.Fatalf("err = %v", err)
	}
	if err := WriteSpeedscope(&buf, nil, []Event{{Frame: 0}}); !errors.Is(err, ErrNoEvents) {
		t.Fatalf("lone close: err = %v", err)
	}
}
