package village

import (
	"errors"
	"testing"
	"time"
)

func freshVillager() VillagerAggregate {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewVillager("Luna", AnimalCat, PersonalityNormal, "user-1", now)
}

func TestFeedNeverIncreasesHunger(t *testing.T) {
	svc := InteractionService{}
	for _, hunger := range []int{0, 15, 50, 100} {
		v := freshVillager()
		v.Needs.Hunger = hunger
		out, err := svc.Interact(v, InteractionFeed, v.UpdatedAt.Add(time.Minute))
		if err != nil {
			t.Fatalf("feed: %v", err)
		}
		if out.Villager.Needs.Hunger > hunger {
			t.Fatalf("feed raised hunger %d -> %d", hunger, out.Villager.Needs.Hunger)
		}
	}
}

func TestSleepNeverDecreasesEnergy(t *testing.T) {
	svc := InteractionService{}
	for _, energy := range []int{0, 40, 100} {
		v := freshVillager()
		v.Needs.Energy = energy
		now := v.UpdatedAt.Add(time.Minute)
		out, err := svc.Interact(v, InteractionSleep, now)
		if err != nil {
			t.Fatalf("sleep: %v", err)
		}
		if out.Villager.Needs.Energy < energy {
			t.Fatalf("sleep lowered energy %d -> %d", energy, out.Villager.Needs.Energy)
		}
		if !out.Villager.LastSleep.Equal(now) {
			t.Fatalf("lastSleep not updated")
		}
	}
}

func TestPlayBlockedWhenSick(t *testing.T) {
	svc := InteractionService{}
	v := freshVillager()
	v.Needs.HealthLevel = PlayMinHealth - 1
	before := v
	_, err := svc.Interact(v, InteractionPlay, v.UpdatedAt.Add(time.Minute))
	if !errors.Is(err, ErrPlayWhileSick) {
		t.Fatalf("expected ErrPlayWhileSick, got %v", err)
	}
	if v != before {
		t.Fatalf("rejected play mutated villager")
	}
}

func TestHealRejectedWhenHealthy(t *testing.T) {
	svc := InteractionService{}
	v := freshVillager()
	v.Needs.HealthLevel = 95
	_, err := svc.Interact(v, InteractionHeal, v.UpdatedAt.Add(time.Minute))
	if !errors.Is(err, ErrAlreadyHealthy) {
		t.Fatalf("expected ErrAlreadyHealthy, got %v", err)
	}
	if v.Needs.HealthLevel != 95 {
		t.Fatalf("healthLevel changed on rejected heal: %d", v.Needs.HealthLevel)
	}
}

func TestHealRaisesHealth(t *testing.T) {
	svc := InteractionService{}
	v := freshVillager()
	v.Needs.HealthLevel = 40
	out, err := svc.Interact(v, InteractionHeal, v.UpdatedAt.Add(time.Minute))
	if err != nil {
		t.Fatalf("heal: %v", err)
	}
	if got, want := out.Villager.Needs.HealthLevel, 70; got != want {
		t.Fatalf("healthLevel=%d want=%d", got, want)
	}
}

func TestInteractionsStayInBounds(t *testing.T) {
	svc := InteractionService{}
	kinds := []InteractionType{
		InteractionTalk, InteractionGift, InteractionPlay,
		InteractionFeed, InteractionHeal, InteractionSleep,
	}
	extremes := []Needs{
		{Happiness: 0, Hunger: 0, Energy: 0, HealthLevel: 100},
		{Happiness: 100, Hunger: 100, Energy: 100, HealthLevel: 50},
	}
	for _, kind := range kinds {
		for _, needs := range extremes {
			v := freshVillager()
			v.Needs = needs
			out, err := svc.Interact(v, kind, v.UpdatedAt.Add(time.Minute))
			if err != nil {
				// Precondition rejections are covered elsewhere.
				continue
			}
			n := out.Villager.Needs
			for name, got := range map[string]int{
				"happiness": n.Happiness, "hunger": n.Hunger,
				"energy": n.Energy, "healthLevel": n.HealthLevel,
				"friendship": out.Villager.FriendshipLevel,
			} {
				if got < NeedsMin || got > NeedsMax {
					t.Fatalf("%s/%s out of bounds: %d", kind, name, got)
				}
			}
		}
	}
}

func TestTalkFriendshipBoundedAndReported(t *testing.T) {
	svc := InteractionService{}
	for _, p := range []Personality{
		PersonalityLazy, PersonalityNormal, PersonalityPeppy,
		PersonalityJock, PersonalityCranky, PersonalitySnooty, PersonalitySmug,
	} {
		v := freshVillager()
		v.Personality = p
		v.FriendshipLevel = 50
		out, err := svc.Interact(v, InteractionTalk, v.UpdatedAt.Add(time.Minute))
		if err != nil {
			t.Fatalf("talk(%s): %v", p, err)
		}
		if out.FriendshipChange < TalkFriendshipMin || out.FriendshipChange > TalkFriendshipMax {
			t.Fatalf("talk(%s): friendship delta %d outside [%d,%d]", p, out.FriendshipChange, TalkFriendshipMin, TalkFriendshipMax)
		}
		if out.Villager.FriendshipLevel != 50+out.FriendshipChange {
			t.Fatalf("talk(%s): reported delta %d does not match level %d", p, out.FriendshipChange, out.Villager.FriendshipLevel)
		}
		if out.Message == "" {
			t.Fatalf("talk(%s): empty message", p)
		}
	}
}

func TestInteractionBumpsVersion(t *testing.T) {
	svc := InteractionService{}
	v := freshVillager()
	out, err := svc.Interact(v, InteractionFeed, v.UpdatedAt.Add(time.Minute))
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if out.Villager.Version != v.Version+1 {
		t.Fatalf("version=%d want=%d", out.Villager.Version, v.Version+1)
	}
}
