package village

import "time"

func NewVillager(name string, animal AnimalType, personality Personality, ownerID string, now time.Time) VillagerAggregate {
	return VillagerAggregate{
		Name:            name,
		AnimalType:      animal,
		Personality:     personality,
		FriendshipLevel: StartingFriendship,
		Needs: Needs{
			Happiness:   StartingHappiness,
			Hunger:      StartingHunger,
			Energy:      StartingEnergy,
			HealthLevel: StartingHealthLevel,
		},
		LastSleep: now,
		OwnerID:   ownerID,
		Version:   1,
		UpdatedAt: now,
	}
}

func clampNeed(v int) int {
	if v < NeedsMin {
		return NeedsMin
	}
	if v > NeedsMax {
		return NeedsMax
	}
	return v
}

// ClampNeeds enforces the [0,100] invariant on every percentage field.
// Every mutation path must end here.
func (v *VillagerAggregate) ClampNeeds() {
	v.Needs.Happiness = clampNeed(v.Needs.Happiness)
	v.Needs.Hunger = clampNeed(v.Needs.Hunger)
	v.Needs.Energy = clampNeed(v.Needs.Energy)
	v.Needs.HealthLevel = clampNeed(v.Needs.HealthLevel)
	v.FriendshipLevel = clampNeed(v.FriendshipLevel)
}

func (v *VillagerAggregate) IsSick() bool {
	return v.Needs.HealthLevel < SickHealthThreshold
}

func (v *VillagerAggregate) StatusAt(now time.Time) Status {
	if v.IsSick() {
		return StatusSick
	}
	if !v.LastSleep.IsZero() && now.Sub(v.LastSleep) < AsleepWindow && now.After(v.LastSleep) {
		return StatusAsleep
	}
	if v.Needs.Happiness >= HappyStatusThreshold {
		return StatusHappy
	}
	if v.Needs.Happiness < SadStatusThreshold {
		return StatusSad
	}
	return StatusNeutral
}

// ApplyIdleDrain settles the time that passed since the last mutation.
// Drains scale per full elapsed hour and cap at IdleDrainCapHours.
func (v *VillagerAggregate) ApplyIdleDrain(now time.Time) {
	if v.UpdatedAt.IsZero() || !now.After(v.UpdatedAt) {
		return
	}
	hours := int(now.Sub(v.UpdatedAt) / time.Hour)
	if hours <= 0 {
		return
	}
	if hours > IdleDrainCapHours {
		hours = IdleDrainCapHours
	}
	v.Needs.Hunger += hours * IdleHungerDrainPerHour
	v.Needs.Energy -= hours * IdleEnergyDrainPerHour
	v.Needs.Happiness -= hours * IdleHappinessDrainPerHour
	v.ClampNeeds()
}

func (v *VillagerAggregate) touch(now time.Time) {
	v.UpdatedAt = now
	v.Version++
}
