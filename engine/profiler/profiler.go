//go:build profile

package profiler

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const Enabled = true

// Init must be called once before Start with the ring capacity in events.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	begin := time.Now().UnixNano()
	ring.push(Event{AtNS: begin, Frame: id, Open: true})
	return func() {
		ring.push(Event{AtNS: max(time.Now().UnixNano(), begin), Frame: id})
	}
}

// Dump writes the captured scopes to path.
func Dump(path string) error {
	evs := ring.snapshot()
	mu.Lock()
	names := append([]string(nil), frames...)
	mu.Unlock()

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	if err := WriteSpeedscope(f, names, evs); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []Event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]Event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e Event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []Event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]Event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

var (
	mu     sync.Mutex
	frames []string
	index  = map[string]int{}
)

func intern(name string) int {
	mu.Lock()
	defer mu.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}
