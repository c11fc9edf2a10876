package ports

// SimMetrics records what the world service and scheduler did. Outcome
// codes are the gameplay result codes from the world service.
type SimMetrics interface {
	RecordOutcome(code string)
	RecordPass(population string, agents int)
	RecordAgentError(population string)
	RecordSave()
}
