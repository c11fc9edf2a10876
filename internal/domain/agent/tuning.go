package agent

// Behavior tuning. A rule's chance gates whether it even attempts to act
// on a given pass; the priority ordering lives in the behavior engine.
const (
	SurvivalHealthThreshold = 40

	NPCConsumeChance = 0.3
	NPCClaimChance   = 0.25
	NPCMoveChance    = 0.6

	StrangerConsumeChance = 0.3
	StrangerGatherChance  = 0.3
	StrangerMoveChance    = 0.7

	AllegianceEvalChance   = 0.05
	AllegianceDropChance   = 0.1
	AllegianceMinValue     = 100
	AllegianceMaxChance    = 0.8
	AllegianceValueDivisor = 1000.0

	NPCStartingCoins = 200
	StartingHealth   = 100
)
