package inmemory

import "sync"

type Snapshot struct {
	CatchTotal    uint64            `json:"catch_total"`
	CatchSuccess  uint64            `json:"catch_success"`
	CatchConflict uint64            `json:"catch_conflict"`
	CatchFailure  uint64            `json:"catch_failure"`
	ByResult      map[string]uint64 `json:"by_result"`
}

// Recorder counts catch attempts in memory for the /ops/kpi endpoint.
type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byResult map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{byResult: map[string]uint64{}}
}

func (r *Recorder) RecordSuccess(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byResult[result]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := Snapshot{
		CatchSuccess:  r.success,
		CatchConflict: r.conflict,
		CatchFailure:  r.failure,
		CatchTotal:    r.success + r.conflict + r.failure,
		ByResult:      make(map[string]uint64, len(r.byResult)),
	}
	for k, v := range r.byResult {
		out.ByResult[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
