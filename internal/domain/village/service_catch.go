package village

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrInsufficientEnergy = errors.New("villager does not have enough energy")
	ErrNoSpeciesAvailable = errors.New("no species available in this habitat")
)

// CatchCandidate mirrors the catalog fields catch resolution needs, so
// the domain stays free of catalog imports.
type CatchCandidate struct {
	SpeciesID        int64
	Name             string
	Difficulty       float64
	ExperienceReward int
	FriendshipReward int
}

// CatchService resolves a catch attempt. The rand source is injected
// so outcomes are deterministic under a fixed seed.
type CatchService struct{}

func EnergyCost(kind ActivityKind) int {
	if kind == ActivityFish {
		return CatchEnergyCostFish
	}
	return CatchEnergyCostBug
}

func failEnergyCost(kind ActivityKind) int {
	if kind == ActivityFish {
		return CatchFailEnergyCostFish
	}
	return CatchFailEnergyCostBug
}

// SuccessChance maps catch difficulty to a success probability. The
// curve is linear and clamped; it decreases strictly with difficulty
// inside the clamp band.
func SuccessChance(difficulty float64) float64 {
	p := CatchBaseSuccess - CatchDifficultySlope*difficulty
	if p < CatchMinSuccessChance {
		return CatchMinSuccessChance
	}
	if p > CatchMaxSuccessChance {
		return CatchMaxSuccessChance
	}
	return p
}

func (CatchService) Resolve(v VillagerAggregate, kind ActivityKind, candidates []CatchCandidate, rng *rand.Rand, now time.Time) (CatchOutcome, error) {
	// Preconditions first; a rejected attempt must not mutate state.
	if v.Needs.Energy < EnergyCost(kind) {
		return CatchOutcome{}, ErrInsufficientEnergy
	}
	if len(candidates) == 0 {
		return CatchOutcome{}, ErrNoSpeciesAvailable
	}

	next := v
	next.ApplyIdleDrain(now)

	target := pickWeighted(candidates, rng)
	success := rng.Float64() < SuccessChance(target.Difficulty)

	out := CatchOutcome{SpeciesID: target.SpeciesID}
	if success {
		next.Needs.Energy -= EnergyCost(kind)
		next.Needs.Happiness += CatchSuccessDeltaHappiness
		next.FriendshipLevel += target.FriendshipReward
		out.Success = true
		out.Message = fmt.Sprintf("%s caught a %s!", next.Name, target.Name)
		out.ExperienceGained = target.ExperienceReward
		out.FriendshipGained = target.FriendshipReward
	} else {
		next.Needs.Energy -= failEnergyCost(kind)
		out.Message = fmt.Sprintf("So close! The %s slipped away from %s.", target.Name, next.Name)
	}

	next.ClampNeeds()
	next.touch(now)
	out.Villager = next
	return out, nil
}

// pickWeighted selects a candidate with weight inverse to difficulty,
// so harder species surface less often on top of their lower odds.
func pickWeighted(candidates []CatchCandidate, rng *rand.Rand) CatchCandidate {
	total := 0.0
	for _, c := range candidates {
		total += candidateWeight(c)
	}
	roll := rng.Float64() * total
	for _, c := range candidates {
		roll -= candidateWeight(c)
		if roll < 0 {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

func candidateWeight(c CatchCandidate) float64 {
	w := CatchWeightOffset - c.Difficulty
	if w <= 0 {
		w = 0.05
	}
	return w
}
