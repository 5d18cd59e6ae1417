package village

import "time"

const (
	NeedsMin = 0
	NeedsMax = 100

	StartingHappiness   = 70
	StartingHunger      = 30
	StartingEnergy      = 80
	StartingHealthLevel = 100
	StartingFriendship  = 0

	SickHealthThreshold   = 30
	PlayMinHealth         = 20
	HealRejectedAtOrAbove = 90
	HealDeltaHealth       = 30
	HappyStatusThreshold  = 70
	SadStatusThreshold    = 30
	AsleepWindow          = time.Hour

	FeedDeltaHunger     = -30
	FeedDeltaHappiness  = 5
	FeedDeltaFriendship = 2

	SleepDeltaEnergy     = 60
	SleepDeltaFriendship = 0

	PlayDeltaHappiness  = 15
	PlayDeltaEnergy     = -10
	PlayDeltaFriendship = 3

	GiftDeltaFriendship = 5
	GiftDeltaHappiness  = 10

	HealDeltaFriendship = 1

	TalkFriendshipMin = 1
	TalkFriendshipMax = 3

	// Idle drain applied at settlement time, per full hour since the
	// last mutation, capped so a long-abandoned villager is not wiped
	// out by a single visit.
	IdleHungerDrainPerHour    = 2
	IdleEnergyDrainPerHour    = 1
	IdleHappinessDrainPerHour = 1
	IdleDrainCapHours         = 12

	CatchEnergyCostFish        = 15
	CatchEnergyCostBug         = 10
	CatchFailEnergyCostFish    = 8
	CatchFailEnergyCostBug     = 5
	CatchSuccessDeltaHappiness = 5
)

// Success odds are 0.95-0.85*difficulty, clamped below. The curve is
// an implementation choice; the only contract is strict monotonic
// decrease in difficulty.
const (
	CatchBaseSuccess      = 0.95
	CatchDifficultySlope  = 0.85
	CatchMinSuccessChance = 0.05
	CatchMaxSuccessChance = 0.95

	// Candidate weight floor keeps difficulty-1.0 species reachable.
	CatchWeightOffset = 1.05
)
