package village

import "time"

type AnimalType string

const (
	AnimalWolf  AnimalType = "WOLF"
	AnimalCat   AnimalType = "CAT"
	AnimalDog   AnimalType = "DOG"
	AnimalEagle AnimalType = "EAGLE"
	AnimalTiger AnimalType = "TIGER"
	AnimalMouse AnimalType = "MOUSE"
)

func ParseAnimalType(s string) (AnimalType, bool) {
	switch AnimalType(s) {
	case AnimalWolf, AnimalCat, AnimalDog, AnimalEagle, AnimalTiger, AnimalMouse:
		return AnimalType(s), true
	default:
		return "", false
	}
}

type Personality string

const (
	PersonalityLazy   Personality = "LAZY"
	PersonalityNormal Personality = "NORMAL"
	PersonalityPeppy  Personality = "PEPPY"
	PersonalityJock   Personality = "JOCK"
	PersonalityCranky Personality = "CRANKY"
	PersonalitySnooty Personality = "SNOOTY"
	PersonalitySmug   Personality = "SMUG"
)

func ParsePersonality(s string) (Personality, bool) {
	switch Personality(s) {
	case PersonalityLazy, PersonalityNormal, PersonalityPeppy, PersonalityJock,
		PersonalityCranky, PersonalitySnooty, PersonalitySmug:
		return Personality(s), true
	default:
		return "", false
	}
}

type Status string

const (
	StatusHappy   Status = "HAPPY"
	StatusNeutral Status = "NEUTRAL"
	StatusSad     Status = "SAD"
	StatusSick    Status = "SICK"
	StatusAsleep  Status = "ASLEEP"
)

// Needs are the four percentage stats every interaction settles against.
// Hunger is inverted relative to the others: higher means hungrier.
type Needs struct {
	Happiness   int `json:"happiness"`
	Hunger      int `json:"hunger"`
	Energy      int `json:"energy"`
	HealthLevel int `json:"healthLevel"`
}

type VillagerAggregate struct {
	ID              int64       `json:"villagerId"`
	Name            string      `json:"villagerName"`
	AnimalType      AnimalType  `json:"animalType"`
	Personality     Personality `json:"personality"`
	FriendshipLevel int         `json:"friendshipLevel"`
	Needs           Needs       `json:"needs"`
	LastSleep       time.Time   `json:"lastSleep"`
	OwnerID         string      `json:"ownerId"`
	Version         int64       `json:"version"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type InteractionType string

const (
	InteractionTalk  InteractionType = "talk"
	InteractionGift  InteractionType = "give-gift"
	InteractionPlay  InteractionType = "play"
	InteractionFeed  InteractionType = "feed"
	InteractionHeal  InteractionType = "heal"
	InteractionSleep InteractionType = "sleep"
)

func ParseInteractionType(s string) (InteractionType, bool) {
	switch InteractionType(s) {
	case InteractionTalk, InteractionGift, InteractionPlay,
		InteractionFeed, InteractionHeal, InteractionSleep:
		return InteractionType(s), true
	default:
		return "", false
	}
}

type ActivityKind string

const (
	ActivityBug  ActivityKind = "bug"
	ActivityFish ActivityKind = "fish"
)

// InteractionOutcome is what an interaction settles to before persistence.
type InteractionOutcome struct {
	Message          string
	FriendshipChange int
	Villager         VillagerAggregate
}

// CatchOutcome is the settled result of one catch attempt.
type CatchOutcome struct {
	Success          bool
	Message          string
	SpeciesID        int64
	ExperienceGained int
	FriendshipGained int
	Villager         VillagerAggregate
}
