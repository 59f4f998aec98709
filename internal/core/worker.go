package core

// CapabilitySet bundles the collaborator-provided tools a worker may use
// during its turn. One set is shared by reference across every worker in a
// pool; it is never copied per worker.
type CapabilitySet struct {
	Search SearchCapability
	Memory MemoryCapability // optional
}

// HasSearch reports whether a search capability is wired.
func (c *CapabilitySet) HasSearch() bool {
	return c != nil && c.Search != nil
}

// HasMemory reports whether a memory capability is wired.
func (c *CapabilitySet) HasMemory() bool {
	return c != nil && c.Memory != nil
}

// Worker is one language-model-backed agent bound to a profile and the
// pool's shared capability set. Workers are owned by the pool manager;
// the execution engine only borrows them for a single invocation.
type Worker struct {
	Index   int // stable for the run, equals the profile's position
	Profile Profile
	Caps    *CapabilitySet
	Session WorkerSession
}

// HasMemory reports whether the worker's bound capability set carries a
// memory capability. Capability presence is checked through this
// descriptor, never by probing the session.
func (w *Worker) HasMemory() bool {
	return w.Caps.HasMemory()
}

// ResultStatus is the terminal status of one worker's run.
type ResultStatus string

const (
	StatusOK     ResultStatus = "ok"
	StatusFailed ResultStatus = "failed"
)

// WorkerResult is the outcome of one worker's turn. Exactly one exists per
// worker per batch, whether the turn succeeded or not.
type WorkerResult struct {
	Index   int
	Profile Profile
	Text    string // extracted text, or empty when Status == StatusFailed
	Status  ResultStatus
	Err     string // error text when Status == StatusFailed
}

// Failed reports whether this worker's turn failed.
func (r WorkerResult) Failed() bool {
	return r.Status == StatusFailed
}

// ExecutionRequest describes one coordinated research run.
type ExecutionRequest struct {
	Query    string
	Mode     RunMode
	PoolSize int
}

// DefaultPoolSize is the fixed worker count per run.
const DefaultPoolSize = 3

// Normalize fills in defaults for zero-valued fields.
func (r ExecutionRequest) Normalize() ExecutionRequest {
	if r.PoolSize <= 0 {
		r.PoolSize = DefaultPoolSize
	}
	if !r.Mode.Valid() {
		r.Mode = ModeStandard
	}
	return r
}

// WorkerStatus is an introspection snapshot of one pooled worker.
type WorkerStatus struct {
	Index     int      `json:"index"`
	Name      string   `json:"name"`
	Profile   string   `json:"profile"`
	Approach  string   `json:"approach"`
	Intensity *float64 `json:"intensity,omitempty"`
	HasSearch bool     `json:"has_search"`
	HasMemory bool     `json:"has_memory"`
}
