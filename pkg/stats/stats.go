package stats

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
)

// Recorder counts classified user agents per browser, OS, device and engine.
type Recorder interface {
	Record(ctx context.Context, info deviceinfo.DeviceInfo) error
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Snapshot holds the counters at one point in time.
type Snapshot struct {
	Total    int64                          `json:"total"`
	Browsers map[deviceinfo.Browser]int64    `json:"browsers"`
	OS       map[deviceinfo.OSType]int64     `json:"os"`
	Devices  map[deviceinfo.DeviceType]int64 `json:"devices"`
	Engines  map[deviceinfo.EngineType]int64 `json:"engines"`
}

func newSnapshot() Snapshot {
	return Snapshot{
		Browsers: map[deviceinfo.Browser]int64{},
		OS:       map[deviceinfo.OSType]int64{},
		Devices:  map[deviceinfo.DeviceType]int64{},
		Engines:  map[deviceinfo.EngineType]int64{},
	}
}

// MemoryRecorder keeps counters in process memory.
type MemoryRecorder struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewMemoryRecorder returns an empty in-process recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{snap: newSnapshot()}
}

// Record counts info in every dimension.
func (m *MemoryRecorder) Record(_ context.Context, info deviceinfo.DeviceInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap.Total++
	m.snap.Browsers[info.Browser]++
	m.snap.OS[info.OS]++
	m.snap.Devices[info.Device]++
	m.snap.Engines[info.Engine]++
	return nil
}

// Snapshot returns a copy; later Record calls do not affect it.
func (m *MemoryRecorder) Snapshot(_ context.Context) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Total:    m.snap.Total,
		Browsers: maps.Clone(m.snap.Browsers),
		OS:       maps.Clone(m.snap.OS),
		Devices:  maps.Clone(m.snap.Devices),
		Engines:  maps.Clone(m.snap.Engines),
	}, nil
}
