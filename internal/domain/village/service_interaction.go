package village

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPlayWhileSick   = errors.New("villager is too sick to play")
	ErrAlreadyHealthy  = errors.New("villager is already healthy")
	ErrUnknownInteract = errors.New("unknown interaction type")
)

// InteractionService settles a single interaction against a villager
// aggregate. It never touches persistence; callers save the returned
// aggregate with the version they loaded.
type InteractionService struct{}

func (InteractionService) Interact(v VillagerAggregate, kind InteractionType, now time.Time) (InteractionOutcome, error) {
	next := v
	next.ApplyIdleDrain(now)

	var message string
	var friendshipDelta int

	switch kind {
	case InteractionTalk:
		friendshipDelta = talkFriendshipDelta(next.Personality)
		message = talkMessage(next.Name, next.Personality)
	case InteractionGift:
		friendshipDelta = GiftDeltaFriendship
		next.Needs.Happiness += GiftDeltaHappiness
		message = fmt.Sprintf("%s loved the gift!", next.Name)
	case InteractionPlay:
		if next.Needs.HealthLevel < PlayMinHealth {
			return InteractionOutcome{}, ErrPlayWhileSick
		}
		friendshipDelta = PlayDeltaFriendship
		next.Needs.Happiness += PlayDeltaHappiness
		next.Needs.Energy += PlayDeltaEnergy
		message = fmt.Sprintf("%s had a great time playing with you!", next.Name)
	case InteractionFeed:
		friendshipDelta = FeedDeltaFriendship
		next.Needs.Hunger += FeedDeltaHunger
		next.Needs.Happiness += FeedDeltaHappiness
		message = fmt.Sprintf("%s enjoyed the meal.", next.Name)
	case InteractionHeal:
		if next.Needs.HealthLevel >= HealRejectedAtOrAbove {
			return InteractionOutcome{}, ErrAlreadyHealthy
		}
		friendshipDelta = HealDeltaFriendship
		next.Needs.HealthLevel += HealDeltaHealth
		message = fmt.Sprintf("%s is feeling much better now.", next.Name)
	case InteractionSleep:
		friendshipDelta = SleepDeltaFriendship
		next.Needs.Energy += SleepDeltaEnergy
		next.LastSleep = now
		message = fmt.Sprintf("%s is sound asleep.", next.Name)
	default:
		return InteractionOutcome{}, ErrUnknownInteract
	}

	next.FriendshipLevel += friendshipDelta
	next.ClampNeeds()
	next.touch(now)

	return InteractionOutcome{
		Message:          message,
		FriendshipChange: friendshipDelta,
		Villager:         next,
	}, nil
}

func talkFriendshipDelta(p Personality) int {
	switch p {
	case PersonalityPeppy, PersonalityJock:
		return TalkFriendshipMax
	case PersonalityCranky, PersonalitySnooty:
		return TalkFriendshipMin
	default:
		return 2
	}
}

func talkMessage(name string, p Personality) string {
	switch p {
	case PersonalityLazy:
		return fmt.Sprintf("%s yawns: \"Got any snacks on you?\"", name)
	case PersonalityPeppy:
		return fmt.Sprintf("%s beams: \"Today is going to be amazing!\"", name)
	case PersonalityJock:
		return fmt.Sprintf("%s flexes: \"Race you to the river!\"", name)
	case PersonalityCranky:
		return fmt.Sprintf("%s grumbles: \"What do you want now?\"", name)
	case PersonalitySnooty:
		return fmt.Sprintf("%s sniffs: \"I suppose a chat couldn't hurt.\"", name)
	case PersonalitySmug:
		return fmt.Sprintf("%s grins: \"You came to see me? Naturally.\"", name)
	default:
		return fmt.Sprintf("%s waves at you happily.", name)
	}
}
