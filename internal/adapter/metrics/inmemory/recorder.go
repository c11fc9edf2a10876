package inmemory

import "sync"

type Snapshot struct {
	OutcomeTotal  uint64            `json:"outcome_total"`
	ByOutcomeCode map[string]uint64 `json:"by_outcome_code"`
	Passes        map[string]uint64 `json:"passes"`
	AgentsStepped map[string]uint64 `json:"agents_stepped"`
	AgentErrors   map[string]uint64 `json:"agent_errors"`
	Saves         uint64            `json:"saves"`
}

// Recorder is the in-memory KPI sink for the simulation, exposed at
// /ops/kpi.
type Recorder struct {
	mu            sync.Mutex
	byOutcome     map[string]uint64
	passes        map[string]uint64
	agentsStepped map[string]uint64
	agentErrors   map[string]uint64
	saves         uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome:     map[string]uint64{},
		passes:        map[string]uint64{},
		agentsStepped: map[string]uint64{},
		agentErrors:   map[string]uint64{},
	}
}

func (r *Recorder) RecordOutcome(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOutcome[code]++
}

func (r *Recorder) RecordPass(population string, agents int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes[population]++
	r.agentsStepped[population] += uint64(agents)
}

func (r *Recorder) RecordAgentError(population string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agentErrors[population]++
}

func (r *Recorder) RecordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := Snapshot{
		ByOutcomeCode: make(map[string]uint64, len(r.byOutcome)),
		Passes:        make(map[string]uint64, len(r.passes)),
		AgentsStepped: make(map[string]uint64, len(r.agentsStepped)),
		AgentErrors:   make(map[string]uint64, len(r.agentErrors)),
		Saves:         r.saves,
	}
	for k, v := range r.byOutcome {
		out.ByOutcomeCode[k] = v
		out.OutcomeTotal += v
	}
	for k, v := range r.passes {
		out.Passes[k] = v
	}
	for k, v := range r.agentsStepped {
		out.AgentsStepped[k] = v
	}
	for k, v := range r.agentErrors {
		out.AgentErrors[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
