package inmemory

import "testing"

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordOutcome("OK")
	r.RecordOutcome("OK")
	r.RecordOutcome("ALREADY_CLAIMED")
	r.RecordPass("npc", 12)
	r.RecordPass("npc", 8)
	r.RecordPass("stranger", 50)
	r.RecordAgentError("stranger")
	r.RecordSave()

	s := r.Snapshot()
	if s.OutcomeTotal != 3 {
		t.Errorf("OutcomeTotal = %d, want 3", s.OutcomeTotal)
	}
	if s.ByOutcomeCode["OK"] != 2 || s.ByOutcomeCode["ALREADY_CLAIMED"] != 1 {
		t.Errorf("ByOutcomeCode = %v", s.ByOutcomeCode)
	}
	if s.Passes["npc"] != 2 || s.AgentsStepped["npc"] != 20 {
		t.Errorf("npc passes/stepped = %d/%d, want 2/20", s.Passes["npc"], s.AgentsStepped["npc"])
	}
	if s.AgentErrors["stranger"] != 1 {
		t.Errorf("AgentErrors = %v", s.AgentErrors)
	}
	if s.Saves != 1 {
		t.Errorf("Saves = %d, want 1", s.Saves)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	r := NewRecorder()
	r.RecordOutcome("OK")
	s := r.Snapshot()
	r.RecordOutcome("OK")
	if s.ByOutcomeCode["OK"] != 1 {
		t.Error("snapshot shares state with the live recorder")
	}
}
