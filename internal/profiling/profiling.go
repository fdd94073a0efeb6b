// Package profiling keeps per-frame CPU timing buckets.
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	buckets = make(map[string]time.Duration)
)

// Track starts timing a bucket and returns the func that stops it.
// Usage: defer profiling.Track("camera.Update")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d under name for the current frame.
func Add(name string, d time.Duration) {
	mu.Lock()
	buckets[name] += d
	mu.Unlock()
}

// ResetFrame clears all buckets. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(buckets)
	mu.Unlock()
}

// Snapshot returns a copy of the current buckets.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(buckets))
	for k, v := range buckets {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range buckets {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// TopN formats the n slowest buckets, slowest first, e.g.
// "renderer.Render:4.2ms, overlay.Upload:0.3ms". Ties sort by name.
func TopN(n int) string {
	snap := Snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if snap[names[i]] != snap[names[j]] {
			return snap[names[i]] > snap[names[j]]
		}
		return names[i] < names[j]
	})
	if n < len(names) {
		names = names[:max(n, 0)]
	}

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ":" + formatMs(snap[name])
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strconv.FormatFloat(ms, 'f', 1, 64) + "ms"
}
